package library_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-loans-go/circulation"
	"github.com/AntonStoeckl/library-loans-go/journal"
	"github.com/AntonStoeckl/library-loans-go/library"
	. "github.com/AntonStoeckl/library-loans-go/testutil/helper" //nolint:revive
)

const (
	subjectWelcome  = "Welcome to the Library"
	subjectLoan     = "Loan Confirmed"
	subjectLateFine = "Late Return Fine"
)

type serviceFixture struct {
	ctx      context.Context
	service  *library.Service
	notifier *NotifierSpy
	clock    *ClockStub
}

func givenService(t *testing.T, options ...library.Option) serviceFixture {
	t.Helper()

	notifier := NewNotifierSpy()
	clock := NewClockStub(FixedTime())
	options = append([]library.Option{library.WithClock(clock.Now)}, options...)

	return serviceFixture{
		ctx:      context.Background(),
		service:  GivenServiceWith(t, notifier, options...),
		notifier: notifier,
		clock:    clock,
	}
}

func givenServiceWithBookXAndUserAna(t *testing.T, options ...library.Option) serviceFixture {
	t.Helper()

	f := givenService(t, options...)
	GivenBooksInCatalog(f.ctx, f.service, library.BuildBook("Dom Casmurro", "Machado de Assis", "X"))
	GivenUsersInRegistry(f.ctx, f.service, library.BuildUser("Ana", 1))
	f.notifier.Reset()

	return f
}

func Test_NewService_FailsWithNilNotifier(t *testing.T) {
	// act
	service, err := library.NewService(nil)

	// assert
	assert.ErrorIs(t, err, library.ErrNilNotifier)
	assert.Nil(t, service)
}

func Test_NewService_FailsWithInvalidOptions(t *testing.T) {
	_, err := library.NewService(NewNotifierSpy(), library.WithClock(nil))
	assert.ErrorIs(t, err, library.ErrNilClock)

	_, err = library.NewService(NewNotifierSpy(), library.WithJournal(nil))
	assert.ErrorIs(t, err, library.ErrNilJournal)
}

func Test_NewService_StartsEmpty(t *testing.T) {
	f := givenService(t)

	assert.Empty(t, f.service.ListBooks())
	assert.Empty(t, f.service.ListUsers())
	assert.Empty(t, f.service.ListLoans())
}

func Test_AddBook_AppendsWithoutDeduplication(t *testing.T) {
	// arrange
	f := givenService(t)
	first := library.BuildBook("Dom Casmurro", "Machado de Assis", "X")
	second := library.BuildBook("Dom Casmurro", "Machado de Assis", "X")

	// act
	f.service.AddBook(f.ctx, first)
	f.service.AddBook(f.ctx, second)

	// assert
	books := f.service.ListBooks()
	require.Len(t, books, 2)
	assert.Same(t, first, books[0])
	assert.Same(t, second, books[1])
	assert.Zero(t, f.notifier.GetNotificationCount(), "adding a book must not notify anybody")
}

func Test_AddUser_SendsExactlyOneWelcome(t *testing.T) {
	// arrange
	f := givenService(t)

	// act
	f.service.AddUser(f.ctx, library.BuildUser("Ana", 1))

	// assert
	require.Len(t, f.service.ListUsers(), 1)
	notifications := f.notifier.GetNotifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Ana", notifications[0].Recipient)
	assert.Equal(t, subjectWelcome, notifications[0].Subject)
	assert.Equal(t, "You have been registered in our system!", notifications[0].Message)
}

func Test_Borrow_LendsTheBook(t *testing.T) {
	// arrange
	f := givenServiceWithBookXAndUserAna(t)

	// act
	ok := f.service.Borrow(f.ctx, 1, "X", 7)

	// assert
	assert.True(t, ok)
	assert.False(t, f.service.ListBooks()[0].Available)

	loans := f.service.ListLoans()
	require.Len(t, loans, 1)
	assert.True(t, loans[0].IsOpen())
	assert.Equal(t, FixedTime(), loans[0].LoanedAt)
	assert.Equal(t, FixedTime().Add(7*24*time.Hour), loans[0].DueAt)
	assert.Same(t, f.service.ListBooks()[0], loans[0].Book)
	assert.Same(t, f.service.ListUsers()[0], loans[0].User)

	notification, found := f.notifier.LastNotification()
	require.True(t, found)
	assert.Equal(t, 1, f.notifier.GetNotificationCount())
	assert.Equal(t, "Ana", notification.Recipient)
	assert.Equal(t, subjectLoan, notification.Subject)
	assert.Equal(t, "You borrowed the book: Dom Casmurro", notification.Message)
}

func Test_Borrow_UnknownUserIsRejectedWithoutMutation(t *testing.T) {
	// arrange
	f := givenServiceWithBookXAndUserAna(t)

	// act
	ok := f.service.Borrow(f.ctx, 99, "X", 7)

	// assert
	assert.False(t, ok)
	assert.True(t, f.service.ListBooks()[0].Available)
	assert.Empty(t, f.service.ListLoans())
	assert.Zero(t, f.notifier.GetNotificationCount())
}

func Test_Borrow_UnknownOrUnavailableBookIsRejected(t *testing.T) {
	// arrange
	f := givenServiceWithBookXAndUserAna(t)
	require.True(t, f.service.Borrow(f.ctx, 1, "X", 7))
	f.notifier.Reset()

	// act
	unknown := f.service.Borrow(f.ctx, 1, "Y", 7)
	unavailable := f.service.Borrow(f.ctx, 1, "X", 7)

	// assert
	assert.False(t, unknown)
	assert.False(t, unavailable)
	assert.Len(t, f.service.ListLoans(), 1)
	assert.Zero(t, f.notifier.GetNotificationCount())
}

func Test_Borrow_PicksTheFirstAvailableCopyAndTheFirstMatchingUser(t *testing.T) {
	// arrange
	f := givenService(t)
	firstCopy := library.BuildBook("Dom Casmurro", "Machado de Assis", "X")
	secondCopy := library.BuildBook("Dom Casmurro", "Machado de Assis", "X")
	GivenBooksInCatalog(f.ctx, f.service, firstCopy, secondCopy)
	firstAna := library.BuildUser("Ana", 1)
	secondAna := library.BuildUser("Ana Clone", 1)
	GivenUsersInRegistry(f.ctx, f.service, firstAna, secondAna)

	// act
	firstBorrow := f.service.Borrow(f.ctx, 1, "X", 7)
	secondBorrow := f.service.Borrow(f.ctx, 1, "X", 7)
	thirdBorrow := f.service.Borrow(f.ctx, 1, "X", 7)

	// assert
	assert.True(t, firstBorrow)
	assert.True(t, secondBorrow)
	assert.False(t, thirdBorrow)

	loans := f.service.ListLoans()
	require.Len(t, loans, 2)
	assert.Same(t, firstCopy, loans[0].Book)
	assert.Same(t, secondCopy, loans[1].Book)
	assert.Same(t, firstAna, loans[0].User)
	assert.Same(t, firstAna, loans[1].User)
}

func Test_Borrow_OnlyLendsBooksBuiltAsAvailable(t *testing.T) {
	// arrange
	f := givenService(t)
	GivenBooksInCatalog(f.ctx, f.service, &library.Book{Title: "Literal", ISBN: "L"})
	GivenUsersInRegistry(f.ctx, f.service, library.BuildUser("Ana", 1))

	// act
	lentLiteral := f.service.Borrow(f.ctx, 1, "L", 7)
	GivenBooksInCatalog(f.ctx, f.service, library.BuildBook("Built", "", "L"))
	lentBuilt := f.service.Borrow(f.ctx, 1, "L", 7)

	// assert
	assert.False(t, lentLiteral)
	assert.True(t, lentBuilt)
	require.Len(t, f.service.ListLoans(), 1)
	assert.Equal(t, "Built", f.service.ListLoans()[0].Book.Title)
}

func Test_Borrow_AcceptsZeroDays(t *testing.T) {
	f := givenServiceWithBookXAndUserAna(t)

	assert.True(t, f.service.Borrow(f.ctx, 1, "X", 0))
	assert.Equal(t, FixedTime(), f.service.ListLoans()[0].DueAt)
}

func Test_ReturnBook_LateReturnIsFinedAndNotified(t *testing.T) {
	// arrange
	f := givenServiceWithBookXAndUserAna(t)
	require.True(t, f.service.Borrow(f.ctx, 1, "X", 7))
	require.Len(t, f.notifier.GetNotificationsWithSubject(subjectLoan), 1)
	assert.Empty(t, f.notifier.GetNotificationsWithSubject(subjectLateFine))
	f.notifier.Reset()
	f.clock.AdvanceDays(10)

	// act
	fine := f.service.ReturnBook(f.ctx, "X", 1)

	// assert
	assert.Equal(t, 3.0, fine)
	assert.True(t, f.service.ListBooks()[0].Available)

	loan := f.service.ListLoans()[0]
	assert.False(t, loan.IsOpen())
	assert.Equal(t, FixedTime().Add(10*24*time.Hour), *loan.ReturnedAt)

	notifications := f.notifier.GetNotifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, "Ana", notifications[0].Recipient)
	assert.Equal(t, subjectLateFine, notifications[0].Subject)
	assert.Equal(t, "You have a late fee of 3", notifications[0].Message)
}

func Test_ReturnBook_OnTimeReturnIsNotFined(t *testing.T) {
	// arrange
	f := givenServiceWithBookXAndUserAna(t)
	require.True(t, f.service.Borrow(f.ctx, 1, "X", 7))
	f.notifier.Reset()

	// act
	fine := f.service.ReturnBook(f.ctx, "X", 1)

	// assert
	assert.Zero(t, fine)
	assert.True(t, f.service.ListBooks()[0].Available)
	assert.Zero(t, f.notifier.GetNotificationCount())
}

func Test_ReturnBook_LessThanOneDayLateIsNotFined(t *testing.T) {
	// arrange
	f := givenServiceWithBookXAndUserAna(t)
	require.True(t, f.service.Borrow(f.ctx, 1, "X", 7))
	f.notifier.Reset()
	f.clock.Advance(7*24*time.Hour + 23*time.Hour)

	// act
	fine := f.service.ReturnBook(f.ctx, "X", 1)

	// assert
	assert.Zero(t, fine)
	assert.Zero(t, f.notifier.GetNotificationCount())
}

func Test_ReturnBook_SecondReturnFindsNoOpenLoan(t *testing.T) {
	// arrange
	f := givenServiceWithBookXAndUserAna(t)
	require.True(t, f.service.Borrow(f.ctx, 1, "X", 7))
	f.clock.AdvanceDays(10)
	require.Equal(t, 3.0, f.service.ReturnBook(f.ctx, "X", 1))
	f.notifier.Reset()
	f.clock.AdvanceDays(5)

	// act
	fine := f.service.ReturnBook(f.ctx, "X", 1)

	// assert
	assert.Equal(t, library.NoOpenLoanFine, fine)
	assert.Equal(t, -1.0, fine)
	assert.Equal(t, FixedTime().Add(10*24*time.Hour), *f.service.ListLoans()[0].ReturnedAt, "return date must not change")
	assert.Zero(t, f.notifier.GetNotificationCount())
}

func Test_ReturnBook_WithoutMatchingLoanReturnsSentinel(t *testing.T) {
	// arrange
	f := givenServiceWithBookXAndUserAna(t)
	require.True(t, f.service.Borrow(f.ctx, 1, "X", 7))

	// act & assert
	assert.Equal(t, library.NoOpenLoanFine, f.service.ReturnBook(f.ctx, "X", 2))
	assert.Equal(t, library.NoOpenLoanFine, f.service.ReturnBook(f.ctx, "Y", 1))
	assert.True(t, f.service.ListLoans()[0].IsOpen())
}

func Test_ReturnBook_ClosesTheEarliestOpenLoan(t *testing.T) {
	// arrange
	f := givenService(t)
	GivenBooksInCatalog(f.ctx, f.service,
		library.BuildBook("Dom Casmurro", "Machado de Assis", "X"),
		library.BuildBook("Dom Casmurro", "Machado de Assis", "X"),
	)
	GivenUsersInRegistry(f.ctx, f.service, library.BuildUser("Ana", 1))
	require.True(t, f.service.Borrow(f.ctx, 1, "X", 7))
	require.True(t, f.service.Borrow(f.ctx, 1, "X", 14))

	// act
	f.service.ReturnBook(f.ctx, "X", 1)

	// assert
	loans := f.service.ListLoans()
	assert.False(t, loans[0].IsOpen())
	assert.True(t, loans[1].IsOpen())
	assert.True(t, loans[0].Book.Available)
	assert.False(t, loans[1].Book.Available)
}

func Test_ReturnedBookCanBeBorrowedAgain(t *testing.T) {
	// arrange
	f := givenServiceWithBookXAndUserAna(t)
	require.True(t, f.service.Borrow(f.ctx, 1, "X", 7))
	require.Zero(t, f.service.ReturnBook(f.ctx, "X", 1))

	// act
	ok := f.service.Borrow(f.ctx, 1, "X", 7)

	// assert
	assert.True(t, ok)
	loans := f.service.ListLoans()
	require.Len(t, loans, 2)
	assert.False(t, loans[0].IsOpen())
	assert.True(t, loans[1].IsOpen())
}

func Test_ListOperations_ReturnLiveViews(t *testing.T) {
	// arrange
	f := givenServiceWithBookXAndUserAna(t)
	books := f.service.ListBooks()

	// act
	require.True(t, f.service.Borrow(f.ctx, 1, "X", 7))

	// assert
	assert.False(t, books[0].Available, "a previously listed book must reflect the mutation")
}

func Test_Service_IsSafeForConcurrentBorrowing(t *testing.T) {
	// arrange
	f := givenService(t)
	GivenBooksInCatalog(f.ctx, f.service, library.BuildBook("Dom Casmurro", "Machado de Assis", "X"))
	GivenUsersInRegistry(f.ctx, f.service, library.BuildUser("Ana", 1), library.BuildUser("Bruno", 2))

	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	// act
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			if f.service.Borrow(f.ctx, userID, "X", 7) {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}(i%2 + 1)
	}
	wg.Wait()

	// assert
	assert.Equal(t, 1, successes, "a single copy must be lent exactly once")
	assert.Len(t, f.service.ListLoans(), 1)
}

func Test_Service_RecordsCirculationEventsInTheJournal(t *testing.T) {
	// arrange
	eventJournal := journal.NewMemoryJournal()
	f := givenServiceWithBookXAndUserAna(t, library.WithJournal(eventJournal))

	// act
	f.service.Borrow(f.ctx, 99, "X", 7)
	f.service.Borrow(f.ctx, 1, "X", 7)
	f.clock.AdvanceDays(10)
	f.service.ReturnBook(f.ctx, "X", 1)
	f.service.ReturnBook(f.ctx, "X", 1)

	// assert
	storableEvents, maxSequenceNumber, err := eventJournal.Query(f.ctx, journal.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)
	assert.Equal(t, journal.MaxSequenceNumberUint(6), maxSequenceNumber)

	domainEvents, err := circulation.DomainEventsFrom(storableEvents)
	require.NoError(t, err)
	require.Len(t, domainEvents, 6)

	assert.IsType(t, circulation.BookAddedToCatalog{}, domainEvents[0])
	assert.IsType(t, circulation.UserRegistered{}, domainEvents[1])
	assert.IsType(t, circulation.LendingBookFailed{}, domainEvents[2])
	assert.IsType(t, circulation.BookLentToUser{}, domainEvents[3])
	assert.IsType(t, circulation.BookReturnedByUser{}, domainEvents[4])
	assert.IsType(t, circulation.ReturningBookFailed{}, domainEvents[5])

	lent := domainEvents[3].(circulation.BookLentToUser)
	returned := domainEvents[4].(circulation.BookReturnedByUser)
	assert.Equal(t, f.service.ListLoans()[0].ID.String(), lent.LoanID)
	assert.Equal(t, lent.LoanID, returned.LoanID)
	assert.Equal(t, 3, returned.DaysLate)
	assert.Equal(t, 3.0, returned.Fine)

	failed := domainEvents[2].(circulation.LendingBookFailed)
	assert.Equal(t, library.RejectReasonUserNotRegistered, failed.FailureInfo)
	assert.True(t, failed.IsErrorEvent())

	lentMetadata, err := circulation.EventMetadataFrom(storableEvents[3])
	require.NoError(t, err)
	returnedMetadata, err := circulation.EventMetadataFrom(storableEvents[4])
	require.NoError(t, err)
	assert.Equal(t, lentMetadata.CorrelationID, returnedMetadata.CorrelationID, "events of one loan share a correlation ID")
}

type failingJournal struct{}

func (failingJournal) Append(_ context.Context, _ ...journal.StorableEvent) error {
	return errors.New("journal is full")
}

func Test_Service_JournalFailureDoesNotChangeTheOutcome(t *testing.T) {
	// arrange
	logHandler := NewLogHandlerSpy(false)
	metrics := NewMetricsCollectorSpy(true)
	f := givenServiceWithBookXAndUserAna(t,
		library.WithJournal(failingJournal{}),
		library.WithLogger(slogLogger(logHandler)),
		library.WithMetrics(metrics),
	)
	logHandler.Reset()
	metrics.Reset()

	// act
	ok := f.service.Borrow(f.ctx, 1, "X", 7)

	// assert
	assert.True(t, ok)
	assert.Len(t, f.service.ListLoans(), 1)
	assert.Equal(t, 4, logHandler.GetRecordCount(), "two lookups, one journal error, one operation")
	assert.Equal(t, 1, logHandler.HasErrorLogWithMessage("failed to append circulation event to journal").
		WithAttribute("event_type", circulation.BookLentToUserEventType).Count())
	assert.True(t, metrics.HasCounterRecordForMetric(library.JournalErrorsMetric).
		WithLabel("event_type", circulation.BookLentToUserEventType).Assert())
	assert.Equal(t, 1, metrics.CountCounterRecords(library.JournalErrorsMetric))
	assert.Len(t, metrics.GetCounterRecords(), 3, "journal error, notification, operation call")
	require.Len(t, metrics.GetValueRecords(), 1)
	assert.Equal(t, library.OpenLoansMetric, metrics.GetValueRecords()[0].Metric)
	assert.Equal(t, 1.0, metrics.GetValueRecords()[0].Value)
}

func Test_Service_JournalFailuresAreLoggedForEveryEvent(t *testing.T) {
	// arrange
	logHandler := NewLogHandlerSpy(false)
	f := givenServiceWithBookXAndUserAna(t,
		library.WithJournal(failingJournal{}),
		library.WithLogger(slogLogger(logHandler)),
	)

	// act
	f.service.Borrow(f.ctx, 1, "X", 7)

	// assert
	journalErrors := func() *SpyLogRecordMatcher {
		return logHandler.HasErrorLogWithMessage("failed to append circulation event to journal")
	}
	assert.Equal(t, 3, journalErrors().Count())
	assert.True(t, journalErrors().WithAttribute("event_type", circulation.BookAddedToCatalogEventType).Assert())
	assert.True(t, journalErrors().WithAttribute("event_type", circulation.UserRegisteredEventType).Assert())
	assert.True(t, journalErrors().WithAttribute("event_type", circulation.BookLentToUserEventType).Assert())
	assert.False(t, journalErrors().WithAttribute("event_type", circulation.BookReturnedByUserEventType).Assert())
}
