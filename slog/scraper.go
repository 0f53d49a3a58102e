package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdoc"
)

// Ensure LoggingScraper implements newsdoc.Scraper.
var _ newsdoc.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging.
type LoggingScraper struct {
	next   newsdoc.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next newsdoc.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Parse logs the URL, the number of extracted paragraphs and the error code.
func (s *LoggingScraper) Parse(ctx context.Context, url string) (paragraphs []string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Warn("parse",
				"url", url,
				"code", newsdoc.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Info("parse",
			"url", url,
			"paragraphs", len(paragraphs),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Parse(ctx, url)
}
