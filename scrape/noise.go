package scrape

import (
	"github.com/fwojciec/newsdoc/dom"
	"golang.org/x/net/html/atom"
)

// noiseKinds are removed with everything below them.
var noiseKinds = []atom.Atom{
	atom.Script,
	atom.Picture,
	atom.Button,
	atom.Style,
	atom.Svg,
	atom.Img,
	atom.Input,
	atom.Time,
	atom.Noscript,
	atom.Nav,
	atom.Form,
	atom.Figure,
	atom.Figcaption,
}

// noiseNames are non-standard tags that some sites use to mark boilerplate.
var noiseNames = []string{"meta_scroll", "noindex"}

// RemoveNoise deletes every boilerplate element below root together with its
// subtree and returns the number of elements removed. A second call on the
// same tree removes nothing.
func RemoveNoise(doc *dom.Document, root dom.NodeID) int {
	isKind := doc.Kinds(noiseKinds...)
	isName := doc.Names(noiseNames...)

	var removed int
	for _, id := range doc.FindAll(root, func(id dom.NodeID) bool {
		return isKind(id) || isName(id)
	}) {
		// Nested noise inside an already removed subtree is gone already.
		if !doc.Within(id, root) {
			continue
		}
		doc.Remove(id)
		removed++
	}
	return removed
}
