package library

import (
	"time"
)

// CalculateFine is a pure function of the due date and the actual return date.
//
// It returns 0 if the loan is not returned yet (returnedAt is nil) or was returned on or before
// the due date. Otherwise, it returns the number of whole days late multiplied by FinePerDay.
func CalculateFine(dueAt time.Time, returnedAt *time.Time) float64 {
	return float64(WholeDaysLate(dueAt, returnedAt)) * FinePerDay
}

// WholeDaysLate returns floor((returnedAt - dueAt) / 24h), or 0 when not returned late.
func WholeDaysLate(dueAt time.Time, returnedAt *time.Time) int {
	if returnedAt == nil || !returnedAt.After(dueAt) {
		return 0
	}

	return int(returnedAt.Sub(dueAt) / day)
}
