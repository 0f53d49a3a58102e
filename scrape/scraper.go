package scrape

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/dom"
)

// Ensure Scraper implements newsdoc.Scraper at compile time.
var _ newsdoc.Scraper = (*Scraper)(nil)

// Scraper fetches pages and extracts their article text.
//
// A Scraper holds only its fetcher and an immutable configuration; all
// per-page state lives in the extraction created by each Parse call, so a
// single Scraper may be used from several goroutines at once.
type Scraper struct {
	fetcher newsdoc.Fetcher
	config  *newsdoc.Config
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithConfig sets the tag descriptors used for extraction.
// Defaults to newsdoc.DefaultConfig() if not specified.
func WithConfig(cfg *newsdoc.Config) Option {
	return func(s *Scraper) {
		s.config = cfg
	}
}

// NewScraper creates a new Scraper that retrieves pages with fetcher.
func NewScraper(fetcher newsdoc.Fetcher, opts ...Option) *Scraper {
	s := &Scraper{fetcher: fetcher}
	for _, opt := range opts {
		opt(s)
	}
	if s.config == nil {
		s.config = newsdoc.DefaultConfig()
	}
	return s
}

// Parse fetches url and returns the article title followed by its paragraphs.
// A non-200 response yields a *newsdoc.FetchError carrying the status code.
func (s *Scraper) Parse(ctx context.Context, url string) ([]string, error) {
	resp, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &newsdoc.FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	doc, err := dom.Parse(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, err
	}

	return Extract(doc, url, s.config)
}
