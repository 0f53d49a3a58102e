package scrape_test

import (
	"testing"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/dom"
	"github.com/stretchr/testify/require"
)

var (
	mainTag = newsdoc.MustTag("div", newsdoc.AnyClass)
	textTag = newsdoc.MustTag("p", newsdoc.AnyClass)
)

func parse(t *testing.T, body string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString("<html><body>" + body + "</body></html>")
	require.NoError(t, err)
	return doc
}

func render(doc *dom.Document) string {
	return doc.RenderString(doc.Root())
}
