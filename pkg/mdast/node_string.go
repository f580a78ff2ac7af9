package mdast

var nodeKindNames = [...]string{
	NodeDocument:           "Document",
	NodeParagraph:          "Paragraph",
	NodeHeader:             "Header",
	NodeQuote:              "Quote",
	NodeList:               "List",
	NodeItem:               "Item",
	NodeCode:               "Code",
	NodeRuler:              "Ruler",
	NodeResourceDefinition: "ResourceDefinition",
	NodeComment:            "Comment",
	NodeLine:               "Line",
	NodeText:               "Text",
	NodeCodeText:           "CodeText",
	NodeCharRef:            "CharRef",
	NodeCodeSpan:           "CodeSpan",
	NodeEmphasis:           "Emphasis",
	NodeLink:               "Link",
	NodeImage:              "Image",
	NodeInlineURL:          "InlineURL",
	NodeLineBreak:          "LineBreak",
	NodeOpeningTag:         "OpeningTag",
	NodeClosingTag:         "ClosingTag",
	NodeEmptyTag:           "EmptyTag",
}

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) && nodeKindNames[k] != "" {
		return nodeKindNames[k]
	}
	return "Unknown"
}
