package scrape

import (
	"strings"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// newElement creates a detached element selected by t. A class-constrained
// descriptor also sets the class, so the new element matches t itself.
func newElement(doc *dom.Document, t newsdoc.Tag) dom.NodeID {
	if t.IsWildcard() {
		return doc.NewElement(t.Name())
	}
	return doc.NewElement(t.Name(), html.Attribute{Key: "class", Val: t.Class()})
}

// PromoteSecondary turns secondary containers into main containers. For
// each descriptor in secondary, in order, every matching element below root
// that has direct children matching text gets a new main element holding
// those children, placed right after it; the secondary element is then
// unwrapped, leaving any other content it held in place. Elements without
// direct paragraph children are left untouched. Returns the number of
// promoted elements.
func PromoteSecondary(doc *dom.Document, root dom.NodeID, main newsdoc.Tag, secondary []newsdoc.Tag, text newsdoc.Tag) int {
	isText := doc.Matcher(text)

	var promoted int
	for _, t := range secondary {
		for _, el := range doc.FindAll(root, doc.Matcher(t)) {
			if doc.Parent(el) == dom.Nil {
				continue
			}
			paragraphs := doc.ChildElements(el, isText)
			if len(paragraphs) == 0 {
				continue
			}

			container := newElement(doc, main)
			for _, p := range paragraphs {
				doc.AppendChild(container, p)
			}
			doc.InsertAfter(el, container)
			doc.Unwrap(el)
			promoted++
		}
	}
	return promoted
}

// PromoteHeaders replaces every <h2> and <h3> below root with a new element
// selected by text holding the same children. Headings that contain a link
// are left alone and so are never collected. Returns the number of replaced
// headings.
func PromoteHeaders(doc *dom.Document, root dom.NodeID, text newsdoc.Tag) int {
	isLink := doc.Kinds(atom.A)

	var promoted int
	for _, h := range doc.FindAll(root, doc.Kinds(atom.H2, atom.H3)) {
		if doc.Contains(h, isLink) {
			continue
		}
		p := newElement(doc, text)
		for _, c := range doc.Children(h) {
			doc.AppendChild(p, c)
		}
		if doc.ReplaceWith(h, p) {
			promoted++
		}
	}
	return promoted
}

// ReplaceLineBreaks swaps every <br> below root for a newline text node.
func ReplaceLineBreaks(doc *dom.Document, root dom.NodeID) int {
	var replaced int
	for _, br := range doc.FindAll(root, doc.Kinds(atom.Br)) {
		if doc.ReplaceWith(br, doc.NewText("\n")) {
			replaced++
		}
	}
	return replaced
}

// ExtractTitle returns the trimmed text of the first <h1> below root.
// Returns ENOTFOUND if there is no <h1> or its text is blank.
func ExtractTitle(doc *dom.Document, root dom.NodeID) (string, error) {
	h1 := doc.FindFirst(root, doc.Kinds(atom.H1))
	if h1 == dom.Nil {
		return "", newsdoc.Errorf(newsdoc.ENOTFOUND, "article title not found: page has no <h1>")
	}
	title := strings.TrimSpace(doc.Text(h1))
	if title == "" {
		return "", newsdoc.Errorf(newsdoc.ENOTFOUND, "article title not found: <h1> is empty")
	}
	return title, nil
}
