package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdoc"
)

// Ensure LoggingWriter implements newsdoc.ArticleWriter.
var _ newsdoc.ArticleWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps an ArticleWriter with logging.
type LoggingWriter struct {
	next   newsdoc.ArticleWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next newsdoc.ArticleWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteArticle logs where the article was written.
func (w *LoggingWriter) WriteArticle(ctx context.Context, article *newsdoc.Article) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write article",
			"url", article.URL,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteArticle(ctx, article)
}
