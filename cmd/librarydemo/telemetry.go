package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/AntonStoeckl/library-loans-go/features/shell"
	"github.com/AntonStoeckl/library-loans-go/library"
	"github.com/AntonStoeckl/library-loans-go/oteladapters"
)

const instrumentationName = "github.com/AntonStoeckl/library-loans-go"

// telemetry keeps metrics and spans in memory so the demo can print them without an exporter.
type telemetry struct {
	reader         *sdkmetric.ManualReader
	meterProvider  *sdkmetric.MeterProvider
	spans          *tracetest.SpanRecorder
	tracerProvider *sdktrace.TracerProvider
}

func newTelemetry() *telemetry {
	reader := sdkmetric.NewManualReader()
	spans := tracetest.NewSpanRecorder()

	return &telemetry{
		reader:         reader,
		meterProvider:  sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)),
		spans:          spans,
		tracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)),
	}
}

func (t *telemetry) options() []library.Option {
	return []library.Option{
		library.WithMetrics(t.metricsCollector()),
		library.WithTracing(t.tracingCollector()),
	}
}

func (t *telemetry) queryOptions() []shell.Option {
	return []shell.Option{
		shell.WithMetrics(t.metricsCollector()),
		shell.WithTracing(t.tracingCollector()),
	}
}

func (t *telemetry) metricsCollector() *oteladapters.MetricsCollector {
	return oteladapters.NewMetricsCollector(t.meterProvider.Meter(instrumentationName))
}

func (t *telemetry) tracingCollector() *oteladapters.TracingCollector {
	return oteladapters.NewTracingCollector(t.tracerProvider.Tracer(instrumentationName))
}

// printSummary writes one line per ended span and one line per metric data point, then shuts the providers down.
func (t *telemetry) printSummary(ctx context.Context, out io.Writer) error {
	defer func() {
		_ = t.tracerProvider.Shutdown(ctx)
		_ = t.meterProvider.Shutdown(ctx)
	}()

	for _, span := range t.spans.Ended() {
		if _, err := fmt.Fprintf(out, "span %s status=%s\n", span.Name(), span.Status().Code); err != nil {
			return err
		}
	}

	var resourceMetrics metricdata.ResourceMetrics
	if err := t.reader.Collect(ctx, &resourceMetrics); err != nil {
		return err
	}

	lines := make([]string, 0)
	for _, scopeMetrics := range resourceMetrics.ScopeMetrics {
		for _, m := range scopeMetrics.Metrics {
			lines = append(lines, metricLines(m)...)
		}
	}

	slices.Sort(lines)

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	return nil
}

func metricLines(m metricdata.Metrics) []string {
	lines := make([]string, 0)

	switch data := m.Data.(type) {
	case metricdata.Sum[int64]:
		for _, dp := range data.DataPoints {
			lines = append(lines, fmt.Sprintf("metric %s{%s} %d", m.Name, dp.Attributes.Encoded(attribute.DefaultEncoder()), dp.Value))
		}
	case metricdata.Gauge[float64]:
		for _, dp := range data.DataPoints {
			lines = append(lines, fmt.Sprintf("metric %s{%s} %g", m.Name, dp.Attributes.Encoded(attribute.DefaultEncoder()), dp.Value))
		}
	case metricdata.Histogram[float64]:
		for _, dp := range data.DataPoints {
			lines = append(lines, fmt.Sprintf("metric %s{%s} count=%d", m.Name, dp.Attributes.Encoded(attribute.DefaultEncoder()), dp.Count))
		}
	}

	return lines
}
