package skill

import (
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Document is the structural view of a SKILL.md file: its heading
// inventory and link destinations. Sections are convention, not
// contract, so the model carries what the document has rather than
// validating against a schema.
type Document struct {
	Headings []Heading
	Links    []Link
}

// Heading is a markdown heading with its level
type Heading struct {
	Level int
	Text  string
}

// Link is a markdown link or image destination
type Link struct {
	Destination string
}

// ParseDocument extracts the heading and link inventory from markdown source
func ParseDocument(source []byte) *Document {
	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	root := md.Parser().Parse(text.NewReader(source))

	doc := &Document{}
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			doc.Headings = append(doc.Headings, Heading{
				Level: node.Level,
				Text:  nodeText(node, source),
			})
		case *ast.Link:
			doc.Links = append(doc.Links, Link{Destination: string(node.Destination)})
		case *ast.Image:
			doc.Links = append(doc.Links, Link{Destination: string(node.Destination)})
		}

		return ast.WalkContinue, nil
	})

	return doc
}

// HasHeading reports whether a heading with the given text exists,
// compared case-insensitively
func (d *Document) HasHeading(heading string) bool {
	for _, h := range d.Headings {
		if strings.EqualFold(strings.TrimSpace(h.Text), heading) {
			return true
		}
	}
	return false
}

// nodeText concatenates the text segments of a node's children
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch child := c.(type) {
		case *ast.Text:
			sb.Write(child.Segment.Value(source))
		default:
			sb.WriteString(nodeText(child, source))
		}
	}
	return sb.String()
}
