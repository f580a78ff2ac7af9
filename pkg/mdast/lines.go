package mdast

import "sort"

// DefaultTabWidth is the classic tab-stop width (spec.md §4.1) used when
// a FileSnapshot's TabWidth is left unset.
const DefaultTabWidth = 4

// TabStopWidth returns the number of columns a tab occupies when it
// starts at the 1-based column startCol, per spec.md §4.1's effective-
// width formula: tabWidth - (startCol mod tabWidth) + 1. A tab at column
// 1 occupies tabWidth columns; a tab at a column that is a multiple of
// tabWidth occupies tabWidth+1.
func TabStopWidth(startCol, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return (tabWidth - (startCol % tabWidth)) + 1
}

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Handle last line (may not have trailing newline).
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the file.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// LineAt converts a byte offset to a 1-based line number and an
// effective column: tab bytes expand per TabStopWidth (tab-stop width
// f.TabWidth, spec.md §4.1), every other byte advances the column by 1.
// Returns (0, 0) if the offset is out of range.
func (f *FileSnapshot) LineAt(offset int) (int, int) {
	if offset < 0 || len(f.Lines) == 0 {
		return 0, 0
	}

	// Handle offset at or past end of content.
	if offset >= len(f.Content) {
		lastLine := f.Lines[len(f.Lines)-1]
		// Return position at end of last line.
		return len(f.Lines), f.columnAt(lastLine, offset)
	}

	// Binary search to find the line containing the offset.
	lineIdx := sort.Search(len(f.Lines), func(i int) bool {
		return f.Lines[i].EndOffset > offset
	})

	if lineIdx >= len(f.Lines) {
		lineIdx = len(f.Lines) - 1
	}

	lineInfo := f.Lines[lineIdx]

	// Verify offset is within this line.
	if offset < lineInfo.StartOffset {
		return 0, 0
	}

	// 1-based line, tab-expanded column.
	return lineIdx + 1, f.columnAt(lineInfo, offset)
}

// columnAt walks li's bytes from its start up to offset, expanding any
// tab byte into the column span TabStopWidth says it covers. offset may
// land past content end (a synthetic EOF position); bytes past end of
// content carry no tabs, so they advance the column 1:1.
func (f *FileSnapshot) columnAt(li LineInfo, offset int) int {
	tabWidth := f.TabWidth
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}

	limit := offset
	if limit > len(f.Content) {
		limit = len(f.Content)
	}

	col := 1
	for i := li.StartOffset; i < limit; i++ {
		if f.Content[i] == '\t' {
			col += TabStopWidth(col, tabWidth)
		} else {
			col++
		}
	}
	if offset > len(f.Content) {
		col += offset - len(f.Content)
	}
	return col
}

// Offset converts 1-based line and column numbers to a byte offset,
// treating col as a raw byte position (no tab expansion) — the inverse
// of LineAt only holds for lines with no tab bytes.
// Returns (offset, true) on success, or (0, false) if out of range.
func (f *FileSnapshot) Offset(line, col int) (int, bool) {
	// Validate line number.
	if line < 1 || line > len(f.Lines) {
		return 0, false
	}

	lineInfo := f.Lines[line-1]

	// Validate column number.
	// Column 1 is the first byte of the line.
	if col < 1 {
		return 0, false
	}

	offset := lineInfo.StartOffset + col - 1

	// Allow column to point to end of line (for cursor positioning).
	if offset > lineInfo.EndOffset {
		return 0, false
	}

	return offset, true
}

// LineContent returns the content of a 1-based line number, excluding the newline.
// Returns nil if the line number is out of range.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}

	lineInfo := f.Lines[line-1]
	return f.Content[lineInfo.StartOffset:lineInfo.NewlineStart]
}
