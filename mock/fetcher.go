package mock

import (
	"context"

	"github.com/fwojciec/newsdoc"
)

var _ newsdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of newsdoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*newsdoc.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*newsdoc.Response, error) {
	return f.FetchFn(ctx, url)
}

// HTML returns a Fetcher that serves body with a 200 status for every URL.
func HTML(body string) *Fetcher {
	return &Fetcher{
		FetchFn: func(_ context.Context, _ string) (*newsdoc.Response, error) {
			return &newsdoc.Response{Body: []byte(body), StatusCode: 200}, nil
		},
	}
}

// Status returns a Fetcher that answers every URL with an empty body and code.
func Status(code int) *Fetcher {
	return &Fetcher{
		FetchFn: func(_ context.Context, _ string) (*newsdoc.Response, error) {
			return &newsdoc.Response{StatusCode: code}, nil
		},
	}
}
