package shell

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/AntonStoeckl/library-loans-go/library"
)

const (
	// QueryHandlerDurationMetric tracks query handler execution duration.
	QueryHandlerDurationMetric = "queryhandler_handle_duration_seconds"

	// QueryHandlerCallsMetric tracks total query handler calls.
	QueryHandlerCallsMetric = "queryhandler_handle_calls_total"

	// SpanNameQueryHandle is the span name of a query handler execution.
	SpanNameQueryHandle = "queryhandler.handle"

	// StatusSuccess labels queries which produced a result.
	StatusSuccess = "success"

	// StatusError labels queries which failed.
	StatusError = "error"

	// StatusCanceled labels queries whose context was canceled.
	StatusCanceled = "canceled"

	// StatusTimeout labels queries whose context deadline was exceeded.
	StatusTimeout = "timeout"

	// LogMsgQueryStarted is logged before a query is executed.
	LogMsgQueryStarted = "query handler started"

	// LogMsgQueryCompleted is logged after a query produced a result.
	LogMsgQueryCompleted = "query handler completed"

	// LogMsgQueryFailed is logged when a query failed.
	LogMsgQueryFailed = "query handler failed"

	// LogAttrQueryType is the log attribute, metric label and span attribute naming the query.
	LogAttrQueryType = "query_type"

	// LogAttrStatus is the log attribute and metric label carrying the query status.
	LogAttrStatus = "status"

	// LogAttrDurationMS is the log attribute carrying the query duration in milliseconds.
	LogAttrDurationMS = "duration_ms"

	// LogAttrError is the log attribute carrying the error of a failed query.
	LogAttrError = "error"

	// LogAttrCount is the log attribute carrying the number of items in a query result.
	LogAttrCount = "count"
)

// Observers bundles the optional observability collaborators of a query handler.
type Observers struct {
	Logger           library.Logger
	ContextualLogger library.ContextualLogger
	MetricsCollector library.MetricsCollector
	TracingCollector library.TracingCollector
}

// StartQuerySpan starts a tracing span for a query.
// Returns the updated context and span context, or original context and nil if tracing is disabled.
func (o Observers) StartQuerySpan(ctx context.Context, queryType string) (context.Context, library.SpanContext) {
	if o.TracingCollector == nil {
		return ctx, nil
	}

	return o.TracingCollector.StartSpan(ctx, SpanNameQueryHandle, map[string]string{LogAttrQueryType: queryType})
}

// LogQueryStart logs the beginning of query processing.
func (o Observers) LogQueryStart(ctx context.Context, queryType string) {
	if o.ContextualLogger != nil {
		o.ContextualLogger.InfoContext(ctx, LogMsgQueryStarted, LogAttrQueryType, queryType)
	} else if o.Logger != nil {
		o.Logger.Info(LogMsgQueryStarted, LogAttrQueryType, queryType)
	}
}

// RecordQuerySuccess records the metrics, span and log entry of a successful query.
func (o Observers) RecordQuerySuccess(
	ctx context.Context,
	span library.SpanContext,
	queryType string,
	count int,
	duration time.Duration,
) {

	o.recordQueryMetrics(ctx, queryType, StatusSuccess, duration)
	o.finishQuerySpan(span, StatusSuccess, duration, nil)

	args := []any{
		LogAttrQueryType, queryType,
		LogAttrCount, count,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	if o.ContextualLogger != nil {
		o.ContextualLogger.InfoContext(ctx, LogMsgQueryCompleted, args...)
	} else if o.Logger != nil {
		o.Logger.Info(LogMsgQueryCompleted, args...)
	}
}

// RecordQueryError records the metrics, span and log entry of a failed query.
// Cancellations and timeouts get their own status.
func (o Observers) RecordQueryError(
	ctx context.Context,
	span library.SpanContext,
	queryType string,
	err error,
	duration time.Duration,
) {

	status := StatusError
	switch {
	case errors.Is(err, context.Canceled):
		status = StatusCanceled
	case errors.Is(err, context.DeadlineExceeded):
		status = StatusTimeout
	}

	o.recordQueryMetrics(ctx, queryType, status, duration)
	o.finishQuerySpan(span, status, duration, err)

	args := []any{
		LogAttrQueryType, queryType,
		LogAttrStatus, status,
		LogAttrError, err.Error(),
	}

	if o.ContextualLogger != nil {
		o.ContextualLogger.ErrorContext(ctx, LogMsgQueryFailed, args...)
	} else if o.Logger != nil {
		o.Logger.Error(LogMsgQueryFailed, args...)
	}
}

func (o Observers) recordQueryMetrics(ctx context.Context, queryType string, status string, duration time.Duration) {
	if o.MetricsCollector == nil {
		return
	}

	labels := map[string]string{LogAttrQueryType: queryType, LogAttrStatus: status}

	if contextualCollector, ok := o.MetricsCollector.(library.ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, QueryHandlerDurationMetric, duration, labels)
		contextualCollector.IncrementCounterContext(ctx, QueryHandlerCallsMetric, labels)
	} else {
		o.MetricsCollector.RecordDuration(QueryHandlerDurationMetric, duration, labels)
		o.MetricsCollector.IncrementCounter(QueryHandlerCallsMetric, labels)
	}
}

func (o Observers) finishQuerySpan(span library.SpanContext, status string, duration time.Duration, err error) {
	if o.TracingCollector == nil || span == nil {
		return
	}

	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: fmt.Sprintf("%.2f", ToMilliseconds(duration)),
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
	}

	span.SetStatus(status)
	o.TracingCollector.FinishSpan(span, status, attrs)
}

// ToMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func ToMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
