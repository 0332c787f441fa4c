package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/showcase"
)

// Ensure LoggingContentLoader implements showcase.ContentLoader.
var _ showcase.ContentLoader = (*LoggingContentLoader)(nil)

// LoggingContentLoader wraps a ContentLoader with logging.
type LoggingContentLoader struct {
	next   showcase.ContentLoader
	logger *slog.Logger
}

// NewLoggingContentLoader creates a new LoggingContentLoader.
func NewLoggingContentLoader(next showcase.ContentLoader, logger *slog.Logger) *LoggingContentLoader {
	return &LoggingContentLoader{next: next, logger: logger}
}

// LoadContent delegates to the wrapped loader and logs the operation.
func (l *LoggingContentLoader) LoadContent(ctx context.Context, page *showcase.Page) (content *showcase.Content, err error) {
	defer func(begin time.Time) {
		sources := 0
		if content != nil {
			sources = len(content.Sources)
		}
		l.logger.Info("page load",
			"view", page.ViewID(),
			"sources", sources,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadContent(ctx, page)
}
