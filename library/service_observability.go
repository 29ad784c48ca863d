package library

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-loans-go/circulation"
)

// startOperationSpan starts a tracing span if the tracing collector is configured.
func (s *Service) startOperationSpan(
	ctx context.Context,
	operation string,
	attrs map[string]string,
) (context.Context, SpanContext) {

	if s.tracingCollector == nil {
		return ctx, nil
	}

	attrs[labelOperation] = operation

	return s.tracingCollector.StartSpan(ctx, spanNamePrefix+operation, attrs)
}

// finishOperation logs the outcome of an operation, records its duration and call metrics,
// and finishes its span.
func (s *Service) finishOperation(
	ctx context.Context,
	span SpanContext,
	operation string,
	status string,
	duration time.Duration,
	args ...any,
) {

	allArgs := append([]any{logAttrOperation, operation, logAttrDurationMS, toMilliseconds(duration)}, args...)

	if status == StatusSuccess {
		s.logInfo(ctx, logMsgOperation+operation, allArgs...)
	} else {
		s.logWarn(ctx, logMsgRejected+operation, allArgs...)
	}

	labels := map[string]string{labelOperation: operation, labelStatus: status}
	s.recordDuration(ctx, OperationDurationMetric, duration, labels)
	s.incrementCounter(ctx, OperationCallsMetric, labels)

	if s.tracingCollector != nil && span != nil {
		span.AddAttribute(logAttrDurationMS, strconv.FormatFloat(toMilliseconds(duration), 'f', 3, 64))
		span.SetStatus(status)
		s.tracingCollector.FinishSpan(span, status, map[string]string{labelStatus: status})
	}
}

// notify hands one notification to the Notifier and counts it.
func (s *Service) notify(ctx context.Context, recipient string, subject string, message string) {
	s.notifier.Send(ctx, recipient, subject, message)
	s.incrementCounter(ctx, NotificationsSentMetric, map[string]string{labelSubject: subject})
}

// record appends a circulation event to the journal if one is configured.
// A zero correlationID makes the event correlate with itself.
func (s *Service) record(ctx context.Context, event circulation.DomainEvent, correlationID uuid.UUID) {
	if s.journal == nil {
		return
	}

	messageID := uuid.New()
	if correlationID == uuid.Nil {
		correlationID = messageID
	}

	storableEvent, err := circulation.StorableEventFrom(event, circulation.BuildEventMetadata(messageID, messageID, correlationID))
	if err == nil {
		err = s.journal.Append(ctx, storableEvent)
	}

	if err != nil {
		s.logError(ctx, logMsgJournalError, logAttrError, err.Error(), "event_type", event.IsEventType())
		s.incrementCounter(ctx, JournalErrorsMetric, map[string]string{"event_type": event.IsEventType()})
	}
}

func (s *Service) recordBorrowRejected(ctx context.Context, reason string) {
	s.incrementCounter(ctx, BorrowRejectedMetric, map[string]string{labelReason: reason})
}

func (s *Service) recordFine(ctx context.Context, fine float64) {
	s.recordValue(ctx, FineAssessedMetric, fine, map[string]string{labelOperation: OperationReturnBook})
}

func (s *Service) recordOpenLoans(ctx context.Context) {
	if s.metricsCollector == nil {
		return
	}

	s.recordValue(ctx, OpenLoansMetric, float64(s.countOpenLoans()), map[string]string{})
}

// recordDuration records a duration metric, with context if the collector supports it.
func (s *Service) recordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
	} else {
		s.metricsCollector.RecordDuration(metric, duration, labels)
	}
}

// incrementCounter increments a counter metric, with context if the collector supports it.
func (s *Service) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
	} else {
		s.metricsCollector.IncrementCounter(metric, labels)
	}
}

// recordValue records a value metric, with context if the collector supports it.
func (s *Service) recordValue(ctx context.Context, metric string, value float64, labels map[string]string) {
	if s.metricsCollector == nil {
		return
	}

	if contextualCollector, ok := s.metricsCollector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
	} else {
		s.metricsCollector.RecordValue(metric, value, labels)
	}
}

func (s *Service) logLookup(ctx context.Context, collection string, found bool, args ...any) {
	allArgs := append([]any{logAttrFound, found}, args...)
	s.logDebug(ctx, logMsgLookup+collection, allArgs...)
}

func (s *Service) logDebug(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.DebugContext(ctx, msg, args...)
	}
}

func (s *Service) logInfo(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.InfoContext(ctx, msg, args...)
	}
}

func (s *Service) logWarn(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.WarnContext(ctx, msg, args...)
	}
}

func (s *Service) logError(ctx context.Context, msg string, args ...any) {
	if s.logger != nil {
		s.logger.Error(msg, args...)
	}

	if s.contextualLogger != nil {
		s.contextualLogger.ErrorContext(ctx, msg, args...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func userIDLabel(userID UserIDInt) string {
	return strconv.Itoa(userID)
}
