package circulation

import (
	"time"
)

// ReturningBookFailedEventType is the event type identifier.
const ReturningBookFailedEventType = "ReturningBookFailed"

// ReturningBookFailed represents a rejected attempt to return a book.
type ReturningBookFailed struct {
	ISBN        string
	UserID      int
	FailureInfo string
	OccurredAt  OccurredAt
}

// BuildReturningBookFailed creates a new ReturningBookFailed event.
func BuildReturningBookFailed(isbn string, userID int, failureInfo string, occurredAt time.Time) ReturningBookFailed {
	return ReturningBookFailed{
		ISBN:        isbn,
		UserID:      userID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e ReturningBookFailed) IsEventType() string {
	return ReturningBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e ReturningBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected operation.
func (e ReturningBookFailed) IsErrorEvent() bool {
	return true
}
