package dom_test

import (
	"testing"

	"github.com/fwojciec/newsdoc/dom"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html/atom"
)

func TestDocument_Detach(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<body><p>a</p><p>b</p></body>`)
	ps := doc.FindAll(doc.Root(), doc.Kinds(atom.P))

	doc.Detach(ps[0])

	assert.Equal(t, "b", doc.Text(doc.Root()))
	assert.Equal(t, dom.Nil, doc.Parent(ps[0]))
	assert.False(t, doc.IsAttached(ps[0]))
	assert.Equal(t, "a", doc.Text(ps[0]))

	// Detaching twice is a no-op.
	doc.Detach(ps[0])
	assert.Equal(t, "b", doc.Text(doc.Root()))
}

func TestDocument_InsertAfter(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<body><p>a</p><p>c</p></body>`)
	ps := doc.FindAll(doc.Root(), doc.Kinds(atom.P))

	assert.True(t, doc.InsertAfter(ps[0], doc.NewText("b")))
	assert.Equal(t, "abc", doc.Text(doc.Root()))

	detached := doc.NewElement("p")
	assert.False(t, doc.InsertAfter(detached, doc.NewText("x")))
	assert.False(t, doc.InsertAfter(ps[0], ps[0]))
}

func TestDocument_InsertAfter_MovesNode(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<body><p>a</p><p>b</p><p>c</p></body>`)
	ps := doc.FindAll(doc.Root(), doc.Kinds(atom.P))

	doc.InsertAfter(ps[2], ps[0])

	assert.Equal(t, "bca", doc.Text(doc.Root()))
	assert.Equal(t, doc.Root(), doc.Parent(ps[0]))
}

func TestDocument_ReplaceWith(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<body><p>a</p><br><p>c</p></body>`)
	br := doc.FindFirst(doc.Root(), doc.Kinds(atom.Br))

	assert.True(t, doc.ReplaceWith(br, doc.NewText("\n")))
	assert.Equal(t, "a\nc", doc.Text(doc.Root()))
	assert.False(t, doc.IsAttached(br))
	assert.False(t, doc.ReplaceWith(br, doc.NewText("x")))
}

func TestDocument_Unwrap(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<body><p>x</p><span>a<b>b</b>c</span><p>y</p></body>`)
	span := doc.FindFirst(doc.Root(), doc.Kinds(atom.Span))

	assert.True(t, doc.Unwrap(span))

	assert.Equal(t, "<body><p>x</p>a<b>b</b>c<p>y</p></body>", doc.RenderString(doc.Root()))
	assert.Equal(t, dom.Nil, doc.Parent(span))
	assert.Empty(t, doc.Children(span))
	assert.False(t, doc.Unwrap(span))
}

func TestDocument_AppendChild(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<body><div></div><p>a</p></body>`)
	div := doc.FindFirst(doc.Root(), doc.Kinds(atom.Div))
	p := doc.FindFirst(doc.Root(), doc.Kinds(atom.P))

	doc.AppendChild(div, p)

	assert.Equal(t, "<body><div><p>a</p></div></body>", doc.RenderString(doc.Root()))
	assert.Equal(t, div, doc.Parent(p))
}

func TestDocument_Within(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<body><div><p>a</p></div><nav></nav></body>`)
	div := doc.FindFirst(doc.Root(), doc.Kinds(atom.Div))
	p := doc.FindFirst(doc.Root(), doc.Kinds(atom.P))
	nav := doc.FindFirst(doc.Root(), doc.Kinds(atom.Nav))

	assert.True(t, doc.Within(p, div))
	assert.True(t, doc.Within(div, div))
	assert.False(t, doc.Within(nav, div))

	doc.Remove(div)
	assert.True(t, doc.Within(p, div))
	assert.False(t, doc.IsAttached(p))
}

func TestDocument_SetRoot(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, `<body><div><p>a</p></div><p>b</p></body>`)
	div := doc.FindFirst(doc.Root(), doc.Kinds(atom.Div))

	doc.SetRoot(div)

	assert.Equal(t, "a", doc.Text(doc.Root()))
}
