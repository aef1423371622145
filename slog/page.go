package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/handbook"
)

// Ensure LoggingPageService implements handbook.PageService.
var _ handbook.PageService = (*LoggingPageService)(nil)

// LoggingPageService wraps a PageService with debug logging.
type LoggingPageService struct {
	next   handbook.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next handbook.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// FindPage delegates to the wrapped service and logs the operation.
func (s *LoggingPageService) FindPage(ctx context.Context, id handbook.SectionID) (page *handbook.Page, err error) {
	defer func(begin time.Time) {
		var bytes int
		if page != nil {
			bytes = len(page.Content)
		}
		s.logger.Info("find page",
			"section", id,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindPage(ctx, id)
}
