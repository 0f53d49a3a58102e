// Package batch parses many article URLs concurrently. Each URL gets its
// own Parse call against a shared Scraper; failures are collected per URL
// instead of aborting the run.
package batch

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/newsdoc"
	"github.com/fwojciec/newsdoc/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Runner.Concurrency is not positive.
const DefaultConcurrency = 4

// Dedupe filter sizing.
const (
	minExpectedURLs   = 1000
	falsePositiveRate = 0.001
)

// Runner parses a list of URLs with bounded concurrency.
type Runner struct {
	Scraper newsdoc.Scraper

	// Limiter, if set, is waited on before every attempt, keyed by host.
	Limiter newsdoc.DomainLimiter

	Concurrency int

	// RetryDelays are the waits between attempts after a transport failure.
	// Nil means DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration
}

// Result is the outcome for one input URL.
type Result struct {
	URL        string
	Paragraphs []string
	Attempts   int
	Err        error

	// Skipped is set for a URL that repeats an earlier one in the input.
	Skipped bool
}

// OK reports whether the URL was parsed successfully.
func (r *Result) OK() bool {
	return !r.Skipped && r.Err == nil
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress. It is always
// called from a single goroutine.
type ProgressFunc func(event ProgressEvent)

// Run parses every URL and returns one Result per input URL, in input order.
// The returned error is non-nil only if ctx was canceled; per-URL failures
// are reported in the results.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) ([]Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(urls))
	total := len(urls)
	completed := 0

	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	// Duplicates are resolved up front so the first occurrence always wins.
	seen := bloom.NewFilter(uint(max(len(urls), minExpectedURLs)), falsePositiveRate)
	var work []int
	for i, u := range urls {
		results[i].URL = u
		if !seen.Visit(u) {
			results[i].Skipped = true
			completed++
			progress(ProgressEvent{Type: ProgressSkipped, Completed: completed, Total: total, URL: u})
			continue
		}
		work = append(work, i)
	}

	type done struct {
		index  int
		result Result
	}
	doneCh := make(chan done, len(work))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, i := range work {
			g.Go(func() error {
				doneCh <- done{index: i, result: r.parse(gctx, urls[i])}
				return nil
			})
		}
		_ = g.Wait()
		close(doneCh)
	}()

	for d := range doneCh {
		results[d.index] = d.result
		completed++

		event := ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: d.result.URL}
		if d.result.Err != nil {
			event.Type = ProgressFailed
			event.Error = d.result.Err
		}
		progress(event)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})

	return results, ctx.Err()
}

// parse handles a single URL: rate limit, parse, retry on transport failure.
func (r *Runner) parse(ctx context.Context, rawURL string) Result {
	result := Result{URL: rawURL}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	result.Err = withRetry(ctx, delays, func(attempt int) error {
		result.Attempts = attempt + 1

		if r.Limiter != nil {
			if err := r.Limiter.Wait(ctx, host(rawURL)); err != nil {
				return err
			}
		}

		paragraphs, err := r.Scraper.Parse(ctx, rawURL)
		if err != nil {
			return err
		}
		result.Paragraphs = paragraphs
		return nil
	})

	return result
}

// host returns the host of rawURL, or rawURL itself when it does not parse,
// so malformed URLs still share a bucket.
func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
