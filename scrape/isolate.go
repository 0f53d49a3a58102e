// Package scrape implements the heuristic article extraction pipeline.
//
// The pipeline is an ordered sequence of destructive rewrites over a
// dom.Document: fragment isolation, secondary container promotion, noise
// removal, title extraction, line break substitution, header promotion and
// text assembly. Each step is exported so it can be exercised on its own;
// Extract runs them in the required order.
package scrape

import (
	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/dom"
	"golang.org/x/net/html/atom"
)

// Isolation records which rule selected the working root.
type Isolation int

const (
	// IsolatedBody means no narrower fragment was found.
	IsolatedBody Isolation = iota

	// IsolatedArticle means the first <article> holding a paragraph was used.
	IsolatedArticle

	// IsolatedHeadingDiv means the first <div> holding exactly one <h1> was used.
	IsolatedHeadingDiv
)

func (i Isolation) String() string {
	switch i {
	case IsolatedArticle:
		return "article"
	case IsolatedHeadingDiv:
		return "heading-div"
	default:
		return "body"
	}
}

// IsolateFragment narrows body to the subtree most likely holding the
// article. The first rule that matches wins:
//
//  1. the first <article> in document order, if it has a descendant
//     matching text;
//  2. the first <div> in document order with exactly one <h1> descendant;
//  3. body itself.
func IsolateFragment(doc *dom.Document, body dom.NodeID, text newsdoc.Tag) (dom.NodeID, Isolation) {
	if article := doc.FindFirst(body, doc.Kinds(atom.Article)); article != dom.Nil {
		if doc.Contains(article, doc.Matcher(text)) {
			return article, IsolatedArticle
		}
	}

	isH1 := doc.Kinds(atom.H1)
	for _, div := range doc.FindAll(body, doc.Kinds(atom.Div)) {
		if len(doc.FindAll(div, isH1)) == 1 {
			return div, IsolatedHeadingDiv
		}
	}

	return body, IsolatedBody
}
