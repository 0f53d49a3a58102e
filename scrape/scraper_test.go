package scrape_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/mock"
	"github.com/fwojciec/newsdoc/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<html><head><title>ignored</title></head><body>
<nav><a href="/">Home</a></nav>
<article><h1>Title</h1><p>Para one.</p><p>Para two.</p></article>
</body></html>`

func TestScraper_Parse(t *testing.T) {
	t.Parallel()

	t.Run("returns title and paragraphs", func(t *testing.T) {
		t.Parallel()

		s := scrape.NewScraper(mock.HTML(articleHTML))

		got, err := s.Parse(context.Background(), "https://news.example.com/a/b")

		require.NoError(t, err)
		assert.Equal(t, []string{"Title", "Para one.", "Para two."}, got)
	})

	t.Run("passes URL and context to fetcher", func(t *testing.T) {
		t.Parallel()

		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		var gotURL string
		var gotValue any
		fetcher := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*newsdoc.Response, error) {
				gotURL = url
				gotValue = ctx.Value(key{})
				return &newsdoc.Response{Body: []byte(articleHTML), StatusCode: 200}, nil
			},
		}

		_, err := scrape.NewScraper(fetcher).Parse(ctx, "https://news.example.com/x")

		require.NoError(t, err)
		assert.Equal(t, "https://news.example.com/x", gotURL)
		assert.Equal(t, "v", gotValue)
	})

	t.Run("non-200 status yields fetch error", func(t *testing.T) {
		t.Parallel()

		s := scrape.NewScraper(mock.Status(404))

		got, err := s.Parse(context.Background(), "https://news.example.com/missing")

		assert.Nil(t, got)
		var fe *newsdoc.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, 404, fe.StatusCode)
		assert.Equal(t, "https://news.example.com/missing", fe.URL)
		assert.Equal(t, newsdoc.EFETCH, newsdoc.ErrorCode(err))
		assert.Equal(t, "invalid URL or website is unreachable (status code: 404)", err.Error())
	})

	t.Run("redirect status is not followed", func(t *testing.T) {
		t.Parallel()

		_, err := scrape.NewScraper(mock.Status(301)).Parse(context.Background(), "https://news.example.com/old")

		assert.Equal(t, 301, newsdoc.StatusCodeOf(err))
	})

	t.Run("wraps transport errors", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("connection refused")
		fetcher := &mock.Fetcher{
			FetchFn: func(context.Context, string) (*newsdoc.Response, error) { return nil, cause },
		}

		_, err := scrape.NewScraper(fetcher).Parse(context.Background(), "https://news.example.com/a")

		require.ErrorIs(t, err, cause)
		assert.Equal(t, newsdoc.EINTERNAL, newsdoc.ErrorCode(err))
		assert.Equal(t, 0, newsdoc.StatusCodeOf(err))
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()

		s := scrape.NewScraper(mock.HTML(`<html><body><p>No title.</p></body></html>`))

		got, err := s.Parse(context.Background(), "https://news.example.com/a")

		assert.Nil(t, got)
		assert.Equal(t, newsdoc.ENOTFOUND, newsdoc.ErrorCode(err))
	})

	t.Run("uses configured tags", func(t *testing.T) {
		t.Parallel()

		cfg := newsdoc.DefaultConfig()
		cfg.TextTag = newsdoc.MustTag("p", "lead")
		s := scrape.NewScraper(mock.HTML(
			`<html><body><article><h1>T</h1><p class="lead">Kept.</p><p>Dropped.</p></article></body></html>`,
		), scrape.WithConfig(cfg))

		got, err := s.Parse(context.Background(), "https://news.example.com/a")

		require.NoError(t, err)
		assert.Equal(t, []string{"T", "Kept."}, got)
	})
}

func TestScraper_ParseConcurrent(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*newsdoc.Response, error) {
			body := fmt.Sprintf(`<html><body><article><h1>%s</h1><p>Body of %s.</p></article></body></html>`, url, url)
			return &newsdoc.Response{Body: []byte(body), StatusCode: 200}, nil
		},
	}
	s := scrape.NewScraper(fetcher)

	var wg sync.WaitGroup
	results := make([][]string, 20)
	errs := make([]error, 20)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = s.Parse(context.Background(), fmt.Sprintf("https://news.example.com/%d", i))
		}()
	}
	wg.Wait()

	for i, got := range results {
		url := fmt.Sprintf("https://news.example.com/%d", i)
		require.NoError(t, errs[i])
		assert.Equal(t, []string{url, "Body of " + url + "."}, got)
	}
}
