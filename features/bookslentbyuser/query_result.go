package bookslentbyuser

import (
	"time"

	"github.com/AntonStoeckl/library-loans-go/library"
)

// LendingInfo represents a book currently lent to the user.
type LendingInfo struct {
	LoanID string
	ISBN   library.ISBNString
	LentAt time.Time
	DueAt  time.Time
}

// BooksCurrentlyLent represents the query result, ordered by LentAt (oldest first).
type BooksCurrentlyLent struct {
	UserID         library.UserIDInt
	Books          []LendingInfo
	Count          int
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event that was used to build the projection.
func (r BooksCurrentlyLent) GetSequenceNumber() uint {
	return r.SequenceNumber
}
