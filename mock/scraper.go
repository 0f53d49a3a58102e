package mock

import (
	"context"

	"github.com/fwojciec/newsdoc"
)

var _ newsdoc.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of newsdoc.Scraper.
type Scraper struct {
	ParseFn func(ctx context.Context, url string) ([]string, error)
}

func (s *Scraper) Parse(ctx context.Context, url string) ([]string, error) {
	return s.ParseFn(ctx, url)
}
