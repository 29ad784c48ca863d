package circulation

import (
	"time"

	"github.com/google/uuid"
)

// BookLentToUserEventType is the event type identifier.
const BookLentToUserEventType = "BookLentToUser"

// BookLentToUser represents when a book is lent to a user.
type BookLentToUser struct {
	LoanID     string
	ISBN       string
	UserID     int
	DueAt      time.Time
	OccurredAt OccurredAt
}

// BuildBookLentToUser creates a new BookLentToUser event.
func BuildBookLentToUser(loanID uuid.UUID, isbn string, userID int, dueAt time.Time, occurredAt time.Time) BookLentToUser {
	return BookLentToUser{
		LoanID:     loanID.String(),
		ISBN:       isbn,
		UserID:     userID,
		DueAt:      ToOccurredAt(dueAt),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookLentToUser) IsEventType() string {
	return BookLentToUserEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookLentToUser) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookLentToUser) IsErrorEvent() bool {
	return false
}
