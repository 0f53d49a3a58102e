package scrape_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "https://news.example.com/a/b"

func extract(t *testing.T, body string) ([]string, error) {
	t.Helper()
	return scrape.ExtractHTML(strings.NewReader("<html><body>"+body+"</body></html>"), pageURL, newsdoc.DefaultConfig())
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "article",
			body: `<article><h1>Title</h1><p>Para one.</p><p>Para two.</p></article>`,
			want: []string{"Title", "Para one.", "Para two."},
		},
		{
			name: "script text never appears",
			body: `<article><h1>T</h1><p>Keep<script>var secret = 1;</script></p><script>more()</script></article>`,
			want: []string{"T", "Keep"},
		},
		{
			name: "plain heading promoted, linked heading dropped",
			body: `<article><h1>T</h1><p>x</p><h2>content</h2><h2><a href="/r">related</a></h2><h3>more</h3></article>`,
			want: []string{"T", "x", "content", "more"},
		},
		{
			name: "blockquote appears once",
			body: `<article><h1>T</h1><p>Before.</p><blockquote><p>Quote</p></blockquote></article>`,
			want: []string{"T", "Before.", "Quote"},
		},
		{
			name: "relative link marker",
			body: `<article><h1>T</h1><p>Read <a href="/relative/path">more</a></p></article>`,
			want: []string{"T", "Read more [https://news.example.com/relative/path]"},
		},
		{
			name: "line breaks become newlines",
			body: `<article><h1>T</h1><p>line<br>two</p></article>`,
			want: []string{"T", "line\ntwo"},
		},
		{
			name: "heading div isolates from sidebar",
			body: `<div class="story"><h1>T</h1><p>A</p></div><div class="sidebar"><p>Ad</p></div>`,
			want: []string{"T", "A"},
		},
		{
			name: "nested main containers in document order",
			body: `<article><h1>T</h1><p>A</p><div><p>B</p><div><p>C</p></div></div><p>D</p></article>`,
			want: []string{"T", "A", "D", "B", "C"},
		},
		{
			name: "span and list item paragraphs are collected",
			body: `<article><h1>T</h1><p>A</p><span><p>B</p></span><ul><li><p>C</p></li><li>skipped</li></ul></article>`,
			want: []string{"T", "A", "B", "C"},
		},
		{
			name: "figures and navigation removed",
			body: `<article><h1>T</h1><nav><p>Menu</p></nav><figure><p>Caption</p></figure><p>A</p></article>`,
			want: []string{"T", "A"},
		},
		{
			name: "blank paragraphs dropped",
			body: `<article><h1>T</h1><p>  </p><p><img src="x"></p><p>A</p></article>`,
			want: []string{"T", "A"},
		},
		{
			name: "body fallback",
			body: `<h1>T</h1><p>A</p><div><p>B</p></div>`,
			want: []string{"T", "A", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := extract(t, tt.body)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_QuoteExactlyOnce(t *testing.T) {
	t.Parallel()

	got, err := extract(t, `<article><h1>T</h1><blockquote><p>Quote</p></blockquote></article>`)

	require.NoError(t, err)
	var n int
	for _, p := range got {
		n += strings.Count(p, "Quote")
	}
	assert.Equal(t, 1, n)
}

func TestExtract_MissingTitle(t *testing.T) {
	t.Parallel()

	got, err := extract(t, `<article><p>No heading here.</p></article>`)

	assert.Nil(t, got)
	assert.Equal(t, newsdoc.ENOTFOUND, newsdoc.ErrorCode(err))
}

func TestExtract_TitleRemovedAsNoise(t *testing.T) {
	t.Parallel()

	// The only heading sits inside a form, which is removed before the title is read.
	got, err := extract(t, `<article><p>A</p><form><h1>Sign up</h1></form></article>`)

	assert.Nil(t, got)
	assert.Equal(t, newsdoc.ENOTFOUND, newsdoc.ErrorCode(err))
}

func TestExtract_CustomConfig(t *testing.T) {
	t.Parallel()

	cfg := newsdoc.DefaultConfig()
	cfg.TextTag = newsdoc.MustTag("p", "body-text")

	got, err := scrape.ExtractHTML(strings.NewReader(
		`<html><body><article><h1>T</h1><p class="body-text">Story.</p><p class="promo">Subscribe!</p></article></body></html>`,
	), pageURL, cfg)

	require.NoError(t, err)
	assert.Equal(t, []string{"T", "Story."}, got)
}
