package mdast_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/mdhtml/pkg/mdast"
)

func buildTestTree() *mdast.Node {
	// Build a simple tree:
	// Document
	//   Header
	//     Line
	//       Text
	//   Paragraph
	//     Line
	//       Text
	//       Emphasis

	doc := mdast.NewNode(mdast.NodeDocument)

	header := mdast.NewNode(mdast.NodeHeader)
	headerLine := mdast.NewNode(mdast.NodeLine)
	headerText := mdast.NewNode(mdast.NodeText)
	mdast.AppendChild(headerLine, headerText)
	mdast.AppendChild(header, headerLine)
	mdast.AppendChild(doc, header)

	para := mdast.NewNode(mdast.NodeParagraph)
	line := mdast.NewNode(mdast.NodeLine)
	lineText := mdast.NewNode(mdast.NodeText)
	mdast.AppendChild(line, lineText)

	emphasis := mdast.NewNode(mdast.NodeEmphasis)
	mdast.AppendChild(line, emphasis)

	mdast.AppendChild(para, line)
	mdast.AppendChild(doc, para)

	return doc
}

func TestWalk(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	var visited []mdast.NodeKind
	err := mdast.Walk(doc, func(n *mdast.Node) error {
		visited = append(visited, n.Kind)
		return nil
	})

	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	expected := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeHeader,
		mdast.NodeLine,
		mdast.NodeText,
		mdast.NodeParagraph,
		mdast.NodeLine,
		mdast.NodeText,
		mdast.NodeEmphasis,
	}

	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes, got %d", len(expected), len(visited))
	}

	for i, kind := range expected {
		if visited[i] != kind {
			t.Errorf("node %d: expected %s, got %s", i, kind, visited[i])
		}
	}
}

func TestWalk_NilRoot(t *testing.T) {
	t.Parallel()

	err := mdast.Walk(nil, func(_ *mdast.Node) error {
		t.Error("callback should not be called for nil root")
		return nil
	})

	if err != nil {
		t.Errorf("expected nil error for nil root, got %v", err)
	}
}

func TestWalk_EmptyDocument(t *testing.T) {
	t.Parallel()

	doc := mdast.NewNode(mdast.NodeDocument)

	count := 0
	err := mdast.Walk(doc, func(_ *mdast.Node) error {
		count++
		return nil
	})

	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	if count != 1 {
		t.Errorf("expected 1 node (document), got %d", count)
	}
}

func TestWalk_EarlyTermination(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	expectedErr := errors.New("stop here")
	count := 0

	err := mdast.Walk(doc, func(n *mdast.Node) error {
		count++
		if n.Kind == mdast.NodeParagraph {
			return expectedErr
		}
		return nil
	})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}

	// Should have visited: Document, Header, Line, Text, Paragraph (then stopped).
	if count != 5 {
		t.Errorf("expected 5 nodes before stopping, got %d", count)
	}
}

func TestFindAll(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	textNodes := mdast.FindAll(doc, func(n *mdast.Node) bool {
		return n.Kind == mdast.NodeText
	})

	if len(textNodes) != 2 {
		t.Errorf("expected 2 text nodes, got %d", len(textNodes))
	}
}

func TestFindByKind(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	headers := mdast.FindByKind(doc, mdast.NodeHeader)
	if len(headers) != 1 {
		t.Errorf("expected 1 header, got %d", len(headers))
	}

	paragraphs := mdast.FindByKind(doc, mdast.NodeParagraph)
	if len(paragraphs) != 1 {
		t.Errorf("expected 1 paragraph, got %d", len(paragraphs))
	}

	codeBlocks := mdast.FindByKind(doc, mdast.NodeCode)
	if len(codeBlocks) != 0 {
		t.Errorf("expected 0 code blocks, got %d", len(codeBlocks))
	}
}
