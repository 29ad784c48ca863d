// Package oteladapters provides OpenTelemetry implementations of the library's observability interfaces.
//
// MetricsCollector maps durations to histograms, counters to counters and values to gauges.
// TracingCollector creates one span per Service operation or query. SlogBridgeLogger and OTelLogger
// implement library.ContextualLogger, so log records carry the trace and span IDs of the active span.
//
// Wiring example:
//
//	service, err := library.NewService(
//		notifier,
//		library.WithMetrics(oteladapters.NewMetricsCollector(meterProvider.Meter("library"))),
//		library.WithTracing(oteladapters.NewTracingCollector(tracerProvider.Tracer("library"))),
//		library.WithContextualLogger(oteladapters.NewSlogBridgeLogger("library")),
//	)
package oteladapters
