package library

import (
	"time"

	"github.com/google/uuid"
)

// LoanState is the lifecycle state of a Loan: open -> closed, terminal at closed.
type LoanState string

const (
	// LoanStateOpen means the book has not been returned yet.
	LoanStateOpen LoanState = "open"

	// LoanStateClosed means the book has been returned.
	LoanStateClosed LoanState = "closed"
)

// Loan records that a Book was lent to a User.
//
// Book and User are non-owning references into the Service's catalog and registry.
// ReturnedAt is nil while the loan is open and is set exactly once on return.
type Loan struct {
	ID         uuid.UUID
	Book       *Book
	User       *User
	LoanedAt   time.Time
	DueAt      time.Time
	ReturnedAt *time.Time
}

// BuildLoan creates a new open Loan which is due the given number of days after loanedAt.
// Days are not validated, zero or negative durations are accepted.
func BuildLoan(book *Book, user *User, loanedAt time.Time, days int) *Loan {
	return &Loan{
		ID:       uuid.New(),
		Book:     book,
		User:     user,
		LoanedAt: loanedAt,
		DueAt:    loanedAt.Add(time.Duration(days) * day),
	}
}

// IsOpen returns true while the book has not been returned.
func (l *Loan) IsOpen() bool {
	return l.ReturnedAt == nil
}

// State returns the lifecycle state of the loan.
func (l *Loan) State() LoanState {
	if l.IsOpen() {
		return LoanStateOpen
	}

	return LoanStateClosed
}

// Fine returns the late fee for this loan, see CalculateFine.
func (l *Loan) Fine() float64 {
	return CalculateFine(l.DueAt, l.ReturnedAt)
}

// DaysLate returns the number of whole days the loan was returned after its due date.
func (l *Loan) DaysLate() int {
	return WholeDaysLate(l.DueAt, l.ReturnedAt)
}

// markReturned closes the loan. It is a no-op on a closed loan, the return date never changes.
func (l *Loan) markReturned(returnedAt time.Time) {
	if !l.IsOpen() {
		return
	}

	l.ReturnedAt = &returnedAt
}

func (l *Loan) matches(isbn ISBNString, userID UserIDInt) bool {
	return l.Book.ISBN == isbn && l.User.ID == userID
}
