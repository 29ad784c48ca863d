package finishedloans

import (
	"slices"

	"github.com/AntonStoeckl/library-loans-go/circulation"
	"github.com/AntonStoeckl/library-loans-go/journal"
)

// Project implements the query logic to determine all finished loans.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: All book return events in the journal
//	WHEN: FinishedLoans query is executed
//	THEN: FinishedLoans struct is returned
//	INCLUDES: Loans that have been returned, with days late and fine
//	EXCLUDES: Open loans and failed returns
func Project(history circulation.DomainEvents, _ Query, maxSequence uint) FinishedLoans {
	loans := make([]LoanInfo, 0)
	totalFines := 0.0

	for _, event := range history {
		if e, ok := event.(circulation.BookReturnedByUser); ok {
			loans = append(loans, LoanInfo{
				LoanID:     e.LoanID,
				ISBN:       e.ISBN,
				UserID:     e.UserID,
				ReturnedAt: e.OccurredAt,
				DaysLate:   e.DaysLate,
				Fine:       e.Fine,
			})
			totalFines += e.Fine
		}
	}

	slices.SortStableFunc(loans, func(a, b LoanInfo) int {
		return a.ReturnedAt.Compare(b.ReturnedAt)
	})

	return FinishedLoans{
		Loans:          loans,
		Count:          len(loans),
		TotalFines:     totalFines,
		SequenceNumber: maxSequence,
	}
}

// BuildEventFilter creates the filter for querying all book return events.
func BuildEventFilter() journal.Filter {
	return journal.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			circulation.BookReturnedByUserEventType,
		).
		Finalize()
}
