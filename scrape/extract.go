package scrape

import (
	"io"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/dom"
)

// extraction holds the state of a single extraction. It is created per call
// and never shared.
type extraction struct {
	doc     *dom.Document
	pageURL string
	config  *newsdoc.Config

	root      dom.NodeID
	isolation Isolation
	title     string
	groups    [][]dom.NodeID
}

// Extract runs the pipeline over a parsed page whose document root is the
// body. pageURL is the address the page was fetched from; it is used to make
// relative links absolute. The document is rewritten in place.
//
// Returns the title followed by the paragraphs, or ENOTFOUND if the working
// fragment has no title.
func Extract(doc *dom.Document, pageURL string, config *newsdoc.Config) ([]string, error) {
	x := &extraction{doc: doc, pageURL: pageURL, config: config}
	return x.run()
}

// ExtractHTML parses r and runs Extract on it.
func ExtractHTML(r io.Reader, pageURL string, config *newsdoc.Config) ([]string, error) {
	doc, err := dom.Parse(r)
	if err != nil {
		return nil, err
	}
	return Extract(doc, pageURL, config)
}

// The order of the steps matters: secondary containers are promoted before
// noise removal, the title is read before headers are promoted, and links
// are inlined only while paragraphs are collected.
func (x *extraction) run() ([]string, error) {
	cfg := x.config

	x.root, x.isolation = IsolateFragment(x.doc, x.doc.Root(), cfg.TextTag)

	PromoteSecondary(x.doc, x.root, cfg.MainTag, cfg.SecondaryTags, cfg.TextTag)
	RemoveNoise(x.doc, x.root)

	title, err := ExtractTitle(x.doc, x.root)
	if err != nil {
		return nil, err
	}
	x.title = title

	ReplaceLineBreaks(x.doc, x.root)
	PromoteHeaders(x.doc, x.root, cfg.TextTag)
	x.groups = TagGroups(x.doc, x.root, cfg.MainTag, cfg.TextTag)

	return Assemble(x.doc, x.title, x.groups, x.pageURL), nil
}
