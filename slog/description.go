package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/showcase"
)

// Ensure LoggingDescriptionLoader implements showcase.DescriptionLoader.
var _ showcase.DescriptionLoader = (*LoggingDescriptionLoader)(nil)

// LoggingDescriptionLoader wraps a DescriptionLoader with logging.
type LoggingDescriptionLoader struct {
	next   showcase.DescriptionLoader
	logger *slog.Logger
}

// NewLoggingDescriptionLoader creates a new LoggingDescriptionLoader.
func NewLoggingDescriptionLoader(next showcase.DescriptionLoader, logger *slog.Logger) *LoggingDescriptionLoader {
	return &LoggingDescriptionLoader{next: next, logger: logger}
}

// LoadDescription delegates to the wrapped loader and logs the operation.
// Requests that do not fetch documentation are not logged.
func (l *LoggingDescriptionLoader) LoadDescription(ctx context.Context, apiPaths []string) (description *showcase.Description, err error) {
	if len(apiPaths) != 1 {
		return l.next.LoadDescription(ctx, apiPaths)
	}

	defer func(begin time.Time) {
		seeAlso := 0
		if description != nil && len(description.APIPaths) > 0 {
			seeAlso = len(description.APIPaths) - 1
		}
		l.logger.Info("description",
			"api", apiPaths[0],
			"see_also", seeAlso,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadDescription(ctx, apiPaths)
}
