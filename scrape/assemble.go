package scrape

import (
	"strings"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/dom"
)

// TagGroups returns the paragraph sets to collect: one for root and one for
// every element below root matching main, in document order. Each set holds
// the direct children matching text.
func TagGroups(doc *dom.Document, root dom.NodeID, main, text newsdoc.Tag) [][]dom.NodeID {
	isText := doc.Matcher(text)
	containers := append([]dom.NodeID{root}, doc.FindAll(root, doc.Matcher(main))...)

	groups := make([][]dom.NodeID, 0, len(containers))
	for _, c := range containers {
		groups = append(groups, doc.ChildElements(c, isText))
	}
	return groups
}

// Assemble inlines links in every paragraph of groups, in order, and returns
// title followed by the trimmed paragraph texts. Blank paragraphs are dropped.
func Assemble(doc *dom.Document, title string, groups [][]dom.NodeID, pageURL string) []string {
	out := []string{title}
	for _, group := range groups {
		for _, p := range group {
			InlineLinks(doc, p, pageURL)
			if s := strings.TrimSpace(doc.Text(p)); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
