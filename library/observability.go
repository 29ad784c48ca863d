package library

import (
	"context"
	"time"
)

// Logger interface for operational logging, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ContextualLogger interface for context-aware logging with automatic trace correlation.
// It follows the same dependency-free pattern as MetricsCollector and TracingCollector,
// so any logging backend that supports context-based correlation can be plugged in.
type ContextualLogger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// MetricsCollector interface for collecting Service operational metrics.
type MetricsCollector interface {
	RecordDuration(metric string, duration time.Duration, labels map[string]string)
	IncrementCounter(metric string, labels map[string]string)
	RecordValue(metric string, value float64, labels map[string]string)
}

// ContextualMetricsCollector extends MetricsCollector with context-aware methods for trace correlation.
// This interface is optional - the Service uses the context-aware methods when available.
type ContextualMetricsCollector interface {
	MetricsCollector
	RecordDurationContext(ctx context.Context, metric string, duration time.Duration, labels map[string]string)
	IncrementCounterContext(ctx context.Context, metric string, labels map[string]string)
	RecordValueContext(ctx context.Context, metric string, value float64, labels map[string]string)
}

// SpanContext represents an active tracing span that can be finished and updated with attributes.
type SpanContext interface {
	SetStatus(status string)
	AddAttribute(key, value string)
}

// TracingCollector interface for collecting tracing information from Service operations.
type TracingCollector interface {
	StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, SpanContext)
	FinishSpan(spanCtx SpanContext, status string, attrs map[string]string)
}

const (
	// OperationDurationMetric tracks the duration of each Service operation.
	OperationDurationMetric = "library_operation_duration_seconds"

	// OperationCallsMetric counts Service operations by operation and status.
	OperationCallsMetric = "library_operation_calls_total"

	// BorrowRejectedMetric counts rejected borrow attempts, labeled with the reason.
	BorrowRejectedMetric = "library_borrow_rejected_total"

	// FineAssessedMetric records the amount of each fine greater than zero.
	FineAssessedMetric = "library_fine_amount"

	// OpenLoansMetric records the number of open loans after each borrow or return.
	OpenLoansMetric = "library_open_loans"

	// NotificationsSentMetric counts notifications handed to the Notifier, labeled with the subject.
	NotificationsSentMetric = "library_notifications_sent_total"

	// JournalErrorsMetric counts failed journal appends.
	JournalErrorsMetric = "library_journal_errors_total"
)

const (
	// OperationAddBook is the operation label for AddBook.
	OperationAddBook = "add_book"

	// OperationAddUser is the operation label for AddUser.
	OperationAddUser = "add_user"

	// OperationBorrow is the operation label for Borrow.
	OperationBorrow = "borrow"

	// OperationReturnBook is the operation label for ReturnBook.
	OperationReturnBook = "return_book"

	// StatusSuccess labels operations that changed state.
	StatusSuccess = "success"

	// StatusRejected labels operations that were answered with a sentinel value.
	StatusRejected = "rejected"

	// RejectReasonBookNotAvailable is used when no available book matches the ISBN.
	RejectReasonBookNotAvailable = "book is not available"

	// RejectReasonUserNotRegistered is used when no user matches the ID.
	RejectReasonUserNotRegistered = "user is not registered"

	// RejectReasonNoOpenLoan is used when no open loan matches the ISBN and user ID.
	RejectReasonNoOpenLoan = "no open loan"
)

const (
	spanNamePrefix     = "library."
	logMsgOperation    = "library operation: "
	logMsgRejected     = "library operation rejected: "
	logMsgLookup       = "library lookup: "
	logMsgJournalError = "failed to append circulation event to journal"
	logAttrOperation   = "operation"
	logAttrISBN        = "isbn"
	logAttrUserID      = "user_id"
	logAttrTitle       = "title"
	logAttrDays        = "days"
	logAttrFine        = "fine"
	logAttrReason      = "reason"
	logAttrFound       = "found"
	logAttrError       = "error"
	logAttrDurationMS  = "duration_ms"
	labelOperation     = "operation"
	labelStatus        = "status"
	labelReason        = "reason"
	labelSubject       = "subject"
)
