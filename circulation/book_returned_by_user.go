package circulation

import (
	"time"

	"github.com/google/uuid"
)

// BookReturnedByUserEventType is the event type identifier.
const BookReturnedByUserEventType = "BookReturnedByUser"

// BookReturnedByUser represents when a user returns a borrowed book, including the assessed fine.
type BookReturnedByUser struct {
	LoanID     string
	ISBN       string
	UserID     int
	DaysLate   int
	Fine       float64
	OccurredAt OccurredAt
}

// BuildBookReturnedByUser creates a new BookReturnedByUser event.
func BuildBookReturnedByUser(
	loanID uuid.UUID,
	isbn string,
	userID int,
	daysLate int,
	fine float64,
	occurredAt time.Time,
) BookReturnedByUser {

	return BookReturnedByUser{
		LoanID:     loanID.String(),
		ISBN:       isbn,
		UserID:     userID,
		DaysLate:   daysLate,
		Fine:       fine,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

// IsEventType returns the event type identifier.
func (e BookReturnedByUser) IsEventType() string {
	return BookReturnedByUserEventType
}

// HasOccurredAt returns when this event occurred.
func (e BookReturnedByUser) HasOccurredAt() time.Time {
	return e.OccurredAt
}

// IsErrorEvent returns false since this event represents a successful operation.
func (e BookReturnedByUser) IsErrorEvent() bool {
	return false
}
