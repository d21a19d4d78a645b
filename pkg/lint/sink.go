package lint

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/termlint/pkg/core"
)

// Sink receives every rendered diagnostic with its location string.
type Sink interface {
	Report(severity core.Severity, message, location string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(severity core.Severity, message, location string)

// Report calls f.
func (f SinkFunc) Report(severity core.Severity, message, location string) {
	f(severity, message, location)
}

// DiscardSink drops all reports.
var DiscardSink Sink = SinkFunc(func(core.Severity, string, string) {})

type slogSink struct {
	logger *slog.Logger
}

// NewSlogSink reports diagnostics to logger at the level matching their severity.
func NewSlogSink(logger *slog.Logger) Sink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &slogSink{logger: logger}
}

func (s *slogSink) Report(severity core.Severity, message, location string) {
	s.logger.Log(context.Background(), SlogLevel(severity), message, "location", location)
}

// SlogLevel maps a severity to a slog level. Hints log at debug.
func SlogLevel(severity core.Severity) slog.Level {
	switch severity {
	case core.SeverityError:
		return slog.LevelError
	case core.SeverityWarning:
		return slog.LevelWarn
	case core.SeverityInfo:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
