// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldInput = "input"

	// Tokenizer/parser tracing fields.
	FieldOffset     = "offset"
	FieldLine       = "line"
	FieldColumn     = "column"
	FieldTokenKind  = "token_kind"
	FieldNodeKind   = "node_kind"
	FieldTokenCount = "token_count"
	FieldTabWidth   = "tab_width"

	// Reference-resolution fields.
	FieldRefID   = "ref_id"
	FieldResolved = "resolved"

	// Render fields.
	FieldLanguage = "language"
)
