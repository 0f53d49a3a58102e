package batch

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/newsdoc"
)

// DefaultRetryDelays returns the backoff delays between parse attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retryable reports whether a failed parse is worth another attempt.
// Only transport failures qualify: a non-200 status, a missing title or an
// invalid URL will not change on retry.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return newsdoc.ErrorCode(err) == newsdoc.EINTERNAL
}

// withRetry calls fn until it succeeds, returns a non-retryable error, or
// the delays are exhausted. It makes at most len(delays)+1 attempts.
func withRetry(ctx context.Context, delays []time.Duration, fn func(attempt int) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn(attempt)
		if !Retryable(err) || attempt >= len(delays) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}
}
