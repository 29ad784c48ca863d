package shell

import (
	"context"

	"github.com/AntonStoeckl/library-loans-go/journal"
	"github.com/AntonStoeckl/library-loans-go/library"
)

// EventJournal defines the interface query handlers need to read circulation events.
type EventJournal interface {
	Query(ctx context.Context, filter journal.Filter) (journal.StorableEvents, journal.MaxSequenceNumberUint, error)
}

// Option defines a functional option for configuring the Observers of a query handler.
type Option func(*Observers) error

// WithLogging sets the basic logger for a query handler.
func WithLogging(logger library.Logger) Option {
	return func(o *Observers) error {
		o.Logger = logger
		return nil
	}
}

// WithContextualLogging sets the contextual logger for a query handler.
func WithContextualLogging(logger library.ContextualLogger) Option {
	return func(o *Observers) error {
		o.ContextualLogger = logger
		return nil
	}
}

// WithMetrics sets the metrics collector for a query handler.
func WithMetrics(collector library.MetricsCollector) Option {
	return func(o *Observers) error {
		o.MetricsCollector = collector
		return nil
	}
}

// WithTracing sets the tracing collector for a query handler.
func WithTracing(collector library.TracingCollector) Option {
	return func(o *Observers) error {
		o.TracingCollector = collector
		return nil
	}
}

// BuildObservers applies the options to empty Observers.
func BuildObservers(opts ...Option) (Observers, error) {
	o := Observers{}

	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return Observers{}, err
		}
	}

	return o, nil
}
