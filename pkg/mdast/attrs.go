package mdast

// EmphasisType distinguishes the three emphasis strengths classic Markdown
// supports: single-delimiter italic, double-delimiter bold, and the
// triple-delimiter combination of both.
type EmphasisType uint8

const (
	EmphasisItalic EmphasisType = iota
	EmphasisBold
	EmphasisItalicAndBold
)

func (t EmphasisType) String() string {
	switch t {
	case EmphasisItalic:
		return "italic"
	case EmphasisBold:
		return "bold"
	case EmphasisItalicAndBold:
		return "italic_and_bold"
	default:
		return "unknown"
	}
}

// BlockAttrs holds attributes for block-level nodes. Only the fields
// relevant to a node's Kind are populated; the rest stay at zero value.
type BlockAttrs struct {
	// HeaderLevel is the heading level (1-6) for NodeHeader.
	HeaderLevel int

	// List holds list-specific attributes for NodeList.
	List *ListAttrs

	// Item holds item-specific attributes for NodeItem.
	Item *ItemAttrs

	// Code holds code-block attributes for NodeCode.
	Code *CodeAttrs

	// ResourceDefinition holds attributes for NodeResourceDefinition.
	ResourceDefinition *ResourceDefinitionAttrs

	// Comment holds the raw comment text for NodeComment.
	Comment *CommentAttrs
}

// ListAttrs holds attributes for NodeList.
type ListAttrs struct {
	// Ordered is true for ordered lists (1., 2., ...).
	Ordered bool

	// Indentation is the column at which the list's items begin, captured
	// from the first item and propagated to the rest of the list.
	Indentation int
}

// ItemAttrs holds attributes for NodeItem.
type ItemAttrs struct {
	// Indentation is the column of this item's content.
	Indentation int

	// Ordered mirrors the owning list's Ordered flag.
	Ordered bool

	// Loose is promoted to true the moment a blank line appears inside
	// the item's extent; it governs whether the HTML visitor wraps the
	// item's paragraph in <p>.
	Loose bool
}

// CodeAttrs holds attributes for NodeCode.
type CodeAttrs struct {
	// DetectedLanguage is an optional content-based language guess (see
	// SPEC_FULL.md). The parser leaves it empty; the HTML visitor runs its
	// own detection on the code text when it renders the block.
	DetectedLanguage string
}

// ResourceDefinitionAttrs holds attributes for NodeResourceDefinition.
type ResourceDefinitionAttrs struct {
	// ID is the reference id being defined, exactly as it appeared
	// between the brackets (matched case-sensitively at lookup time).
	ID string

	// Resource is the resource this id resolves to. Owned by this node;
	// the ReferenceTable only holds a reference to it.
	Resource *Resource
}

// CommentAttrs holds attributes for NodeComment.
type CommentAttrs struct {
	// Text is the raw comment body, excluding the <!-- --> delimiters.
	Text string
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// Text holds the literal text content for NodeText, NodeCodeText,
	// NodeCharRef, and NodeCodeSpan.
	Text string

	// Emphasis holds emphasis-specific attributes for NodeEmphasis.
	Emphasis *EmphasisAttrs

	// Link holds link attributes for NodeLink.
	Link *LinkAttrs

	// Image holds image attributes for NodeImage.
	Image *ImageAttrs

	// URL holds the literal URL for NodeInlineURL.
	URL string
}

// EmphasisAttrs holds attributes for NodeEmphasis. Emphasis content is a
// flat literal string (the grammar does not recurse into nested inline
// markup inside emphasis), matching original_source's HtmlGenerator,
// which renders Emphasis.getText() directly rather than visiting children.
type EmphasisAttrs struct {
	Type EmphasisType
	Text string
}

// LinkAttrs holds attributes for NodeLink.
//
// A Link is either Referenced (with an optional explicit ReferenceName —
// an empty name means "use the link text as the id") or carries its own
// inline Resource. Text is the flattened plain-text form of the link's
// children, used both as the reference-id fallback and when re-emitting
// an unresolved reference verbatim.
type LinkAttrs struct {
	Referenced            bool
	ReferenceName         string
	HasReferenceName      bool
	Resource              *Resource
	HasWhitespaceAtMiddle bool
	Text                  string
}

// ImageAttrs holds attributes for NodeImage.
type ImageAttrs struct {
	Text     string
	RefID    string
	HasRefID bool
	Resource *Resource
}

// HTMLAttrs holds attributes shared by the HTML passthrough node kinds
// (OpeningTag, ClosingTag, EmptyTag).
type HTMLAttrs struct {
	// Name is the tag's element name, e.g. "div".
	Name string

	// Attributes are the tag's attributes in source order.
	Attributes []Attribute

	// Balanced is true for an OpeningTag once the parser has found a
	// matching ClosingTag later in the stream. Used by the visitor's
	// "is this paragraph really a raw markup block" check.
	Balanced bool

	// Raw holds the original source substring when the tag's internals
	// could not be fully parsed (the HTML-tag failsafe); the visitor
	// re-emits this verbatim instead of a partially-built rendering.
	Raw string
}

// Attribute is a single name="value" HTML attribute.
type Attribute struct {
	Name  string
	Value string
}

// NewBlockAttrs creates a new BlockAttrs with default values.
func NewBlockAttrs() *BlockAttrs {
	return &BlockAttrs{}
}

// NewInlineAttrs creates a new InlineAttrs with default values.
func NewInlineAttrs() *InlineAttrs {
	return &InlineAttrs{}
}

// WithHeaderLevel sets the heading level and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithHeaderLevel(level int) *BlockAttrs {
	a.HeaderLevel = level
	return a
}

// WithList sets list attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithList(attrs *ListAttrs) *BlockAttrs {
	a.List = attrs
	return a
}

// WithItem sets item attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithItem(attrs *ItemAttrs) *BlockAttrs {
	a.Item = attrs
	return a
}

// WithCode sets code-block attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithCode(attrs *CodeAttrs) *BlockAttrs {
	a.Code = attrs
	return a
}

// WithText sets the text content and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithText(text string) *InlineAttrs {
	a.Text = text
	return a
}

// WithLink sets link attributes and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithLink(attrs *LinkAttrs) *InlineAttrs {
	a.Link = attrs
	return a
}

// WithImage sets image attributes and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithImage(attrs *ImageAttrs) *InlineAttrs {
	a.Image = attrs
	return a
}

// WithEmphasis sets emphasis attributes and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithEmphasis(attrs *EmphasisAttrs) *InlineAttrs {
	a.Emphasis = attrs
	return a
}
