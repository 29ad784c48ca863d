package finishedloans

import (
	"time"

	"github.com/AntonStoeckl/library-loans-go/library"
)

// LoanInfo represents a finished loan.
type LoanInfo struct {
	LoanID     string
	ISBN       library.ISBNString
	UserID     library.UserIDInt
	ReturnedAt time.Time
	DaysLate   int
	Fine       float64
}

// FinishedLoans represents the query result containing all finished loans in return order.
type FinishedLoans struct {
	Loans          []LoanInfo
	Count          int
	TotalFines     float64
	SequenceNumber uint
}

// GetSequenceNumber returns the sequence number of the last event that was used to build the projection.
func (r FinishedLoans) GetSequenceNumber() uint {
	return r.SequenceNumber
}
