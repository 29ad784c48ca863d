package library

import (
	"context"

	"github.com/AntonStoeckl/library-loans-go/journal"
)

// EventJournal defines the interface the Service needs to record circulation events.
type EventJournal interface {
	Append(ctx context.Context, storableEvents ...journal.StorableEvent) error
}

// Option defines a functional option for configuring the Service.
type Option func(*Service) error

// WithClock sets the time source used for loan, due and return dates. Defaults to time.Now.
func WithClock(clock Clock) Option {
	return func(s *Service) error {
		if clock == nil {
			return ErrNilClock
		}

		s.now = clock

		return nil
	}
}

// WithLogger sets the logger for the Service.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: lookup outcomes of catalog, registry and ledger scans
// Info level: successful operations with their duration
// Warn level: borrow and return attempts answered with a sentinel value
// Error level: failures to record circulation events.
func WithLogger(logger Logger) Option {
	return func(s *Service) error {
		s.logger = logger
		return nil
	}
}

// WithContextualLogger sets the contextual logger for the Service.
// It receives the same messages as the Logger, with the operation's context for trace correlation.
func WithContextualLogger(logger ContextualLogger) Option {
	return func(s *Service) error {
		s.contextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for the Service.
func WithMetrics(collector MetricsCollector) Option {
	return func(s *Service) error {
		s.metricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for the Service.
func WithTracing(collector TracingCollector) Option {
	return func(s *Service) error {
		s.tracingCollector = collector
		return nil
	}
}

// WithJournal makes the Service record a circulation event for every operation.
// Journal failures are logged and counted, they never change the outcome of an operation.
func WithJournal(eventJournal EventJournal) Option {
	return func(s *Service) error {
		if eventJournal == nil {
			return ErrNilJournal
		}

		s.journal = eventJournal

		return nil
	}
}
