package circulation

import (
	"time"
)

// LendingBookFailedEventType is the event type identifier.
const LendingBookFailedEventType = "LendingBookFailed"

// LendingBookFailed represents a rejected attempt to borrow a book.
type LendingBookFailed struct {
	ISBN        string
	UserID      int
	FailureInfo string
	OccurredAt  OccurredAt
}

// BuildLendingBookFailed creates a new LendingBookFailed event.
func BuildLendingBookFailed(isbn string, userID int, failureInfo string, occurredAt time.Time) LendingBookFailed {
	return LendingBookFailed{
		ISBN:        isbn,
		UserID:      userID,
		FailureInfo: failureInfo,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e LendingBookFailed) IsEventType() string {
	return LendingBookFailedEventType
}

// HasOccurredAt returns when this event occurred.
func (e LendingBookFailed) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns true since this event represents a rejected operation.
func (e LendingBookFailed) IsErrorEvent() bool {
	return true
}
