package dom

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsdoc"
	"golang.org/x/net/html"
)

// Parse reads an HTML document and returns an arena holding its body.
// The root of the returned Document is the body element.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, newsdoc.Errorf(newsdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return nil, newsdoc.Errorf(newsdoc.EINVALID, "HTML document has no body")
	}

	return FromNode(body.Nodes[0]), nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the subtree rooted at id as HTML.
func (d *Document) Render(w io.Writer, id NodeID) error {
	return html.Render(w, d.toHTML(id))
}

// RenderString renders the subtree rooted at id and returns it as a string.
func (d *Document) RenderString(id NodeID) string {
	var buf bytes.Buffer
	if err := d.Render(&buf, id); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) toHTML(id NodeID) *html.Node {
	n := &d.nodes[id]
	if n.Type == TextNode {
		return &html.Node{Type: html.TextNode, Data: n.Data}
	}
	out := &html.Node{
		Type:     html.ElementNode,
		DataAtom: n.Atom,
		Data:     n.Data,
		Attr:     n.Attr,
	}
	for _, c := range n.Children {
		out.AppendChild(d.toHTML(c))
	}
	return out
}
