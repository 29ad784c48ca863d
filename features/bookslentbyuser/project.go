package bookslentbyuser

import (
	"slices"
	"strconv"
	"strings"

	"github.com/AntonStoeckl/library-loans-go/circulation"
	"github.com/AntonStoeckl/library-loans-go/journal"
)

// Project implements the query logic to determine the books currently lent to a user.
// This is a pure function with no side effects.
//
// Query Logic:
//
//	GIVEN: A user with UserID
//	WHEN: BooksLentByUser query is executed
//	THEN: BooksCurrentlyLent struct is returned with current lending state
//	INCLUDES: loans of the user which were lent and not returned yet
//	EXCLUDES: Returned loans and loans of other users
func Project(history circulation.DomainEvents, query Query, maxSequence uint) BooksCurrentlyLent {
	lentBooks := make(map[string]LendingInfo)

	for _, event := range history {
		switch e := event.(type) {
		case circulation.BookLentToUser:
			if e.UserID == query.UserID {
				lentBooks[e.LoanID] = LendingInfo{
					LoanID: e.LoanID,
					ISBN:   e.ISBN,
					LentAt: e.OccurredAt,
					DueAt:  e.DueAt,
				}
			}

		case circulation.BookReturnedByUser:
			if e.UserID == query.UserID {
				delete(lentBooks, e.LoanID)
			}
		}
	}

	books := make([]LendingInfo, 0, len(lentBooks))
	for _, book := range lentBooks {
		books = append(books, book)
	}

	slices.SortFunc(books, func(a, b LendingInfo) int {
		if c := a.LentAt.Compare(b.LentAt); c != 0 {
			return c
		}

		return strings.Compare(a.LoanID, b.LoanID)
	})

	return BooksCurrentlyLent{
		UserID:         query.UserID,
		Books:          books,
		Count:          len(books),
		SequenceNumber: maxSequence,
	}
}

// BuildEventFilter creates the filter for querying the lending events of the specified user.
func BuildEventFilter(query Query) journal.Filter {
	return journal.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			circulation.BookLentToUserEventType,
			circulation.BookReturnedByUserEventType,
		).
		AndAnyPredicateOf(
			journal.P("UserID", strconv.Itoa(query.UserID)),
		).
		Finalize()
}

