package scrape

import (
	"strings"

	"github.com/fwojciec/newsdoc/dom"
	"golang.org/x/net/html/atom"
)

// Origin returns the scheme and host part of pageURL: its first three
// "/"-separated segments, e.g. "https://news.example.com".
func Origin(pageURL string) string {
	parts := strings.SplitN(pageURL, "/", 4)
	if len(parts) > 3 {
		parts = parts[:3]
	}
	return strings.Join(parts, "/")
}

// AbsoluteHref returns href unchanged if it already starts with "http" and
// prefixes it with the origin of pageURL otherwise.
func AbsoluteHref(href, pageURL string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return Origin(pageURL) + href
}

// InlineLinks rewrites every anchor with an href below p into its text
// followed by a " [<absolute-url>]" marker. Anchors whose text already starts
// with "http" are left as they are. Returns the number of rewritten anchors.
func InlineLinks(doc *dom.Document, p dom.NodeID, pageURL string) int {
	var inlined int
	for _, a := range doc.FindAll(p, doc.Kinds(atom.A)) {
		href, ok := doc.Attr(a, "href")
		if !ok {
			continue
		}
		if strings.HasPrefix(doc.Text(a), "http") {
			continue
		}
		marker := doc.NewText(" [" + AbsoluteHref(href, pageURL) + "]")
		if !doc.InsertAfter(a, marker) {
			continue
		}
		doc.Unwrap(a)
		inlined++
	}
	return inlined
}
