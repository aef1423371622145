// Package slog provides logging decorators for handbook services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/handbook"
)

// Ensure LoggingNavigator implements handbook.Navigator.
var _ handbook.Navigator = (*LoggingNavigator)(nil)

// LoggingNavigator wraps a Navigator with debug logging.
type LoggingNavigator struct {
	next   handbook.Navigator
	logger *slog.Logger
}

// NewLoggingNavigator creates a new LoggingNavigator.
func NewLoggingNavigator(next handbook.Navigator, logger *slog.Logger) *LoggingNavigator {
	return &LoggingNavigator{next: next, logger: logger}
}

// SetActive delegates to the wrapped navigator and logs the transition.
func (n *LoggingNavigator) SetActive(s *handbook.Session, id handbook.SectionID) {
	from := s.Active()
	n.next.SetActive(s, id)
	n.logger.Debug("navigate",
		"from", from,
		"section", id,
	)
}

// ResolveAndActivate delegates to the wrapped navigator and logs the query
// with its outcome.
func (n *LoggingNavigator) ResolveAndActivate(s *handbook.Session, query string) (id handbook.SectionID, ok bool) {
	defer func(begin time.Time) {
		attrs := []any{
			"query", query,
			"hit", ok,
			"duration", time.Since(begin),
		}
		if ok {
			attrs = append(attrs, "section", id)
		}
		n.logger.Info("resolve", attrs...)
	}(time.Now())
	return n.next.ResolveAndActivate(s, query)
}
