package library

import (
	"time"
)

// ISBNString represents an ISBN, used as the natural lookup key of a Book.
type ISBNString = string

// UserIDInt represents a user identifier, used as the lookup key of a User.
type UserIDInt = int

// Clock returns the current time. It is injectable so tests can control "now".
type Clock func() time.Time

const (
	// FinePerDay is the fixed late fee per whole day a loan is overdue.
	FinePerDay = 1.0

	// NoOpenLoanFine is returned by ReturnBook when no open loan matches the ISBN and user ID.
	// It is deliberately outside the domain of fines, which are never negative.
	NoOpenLoanFine = -1.0
)

const day = 24 * time.Hour
