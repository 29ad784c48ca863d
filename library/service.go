package library

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/library-loans-go/circulation"
)

// Service is the library's lending service.
//
// It exclusively owns the catalog, the registry and the ledger, and sends user-facing
// messages through its Notifier. Every operation holds the Service's lock from lookup to
// mutation, so lookups and mutations are atomic for concurrent callers.
type Service struct {
	mu       sync.Mutex
	catalog  []*Book
	registry []*User
	ledger   []*Loan

	notifier Notifier
	now      Clock
	journal  EventJournal

	logger           Logger
	contextualLogger ContextualLogger
	metricsCollector MetricsCollector
	tracingCollector TracingCollector
}

// NewService creates a Service which sends its notifications through the given Notifier.
func NewService(notifier Notifier, options ...Option) (*Service, error) {
	if notifier == nil {
		return nil, ErrNilNotifier
	}

	s := &Service{
		catalog:  make([]*Book, 0),
		registry: make([]*User, 0),
		ledger:   make([]*Loan, 0),
		notifier: notifier,
		now:      time.Now,
	}

	for _, option := range options {
		if err := option(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// AddBook appends the book to the catalog. There is no validation and no deduplication.
func (s *Service) AddBook(ctx context.Context, book *Book) {
	start := time.Now()
	ctx, span := s.startOperationSpan(ctx, OperationAddBook, map[string]string{logAttrISBN: book.ISBN})

	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = append(s.catalog, book)
	s.record(ctx, circulation.BuildBookAddedToCatalog(book.ISBN, book.Title, book.Author, s.now()), uuid.Nil)

	s.finishOperation(ctx, span, OperationAddBook, StatusSuccess, time.Since(start),
		logAttrISBN, book.ISBN, logAttrTitle, book.Title)
}

// AddUser appends the user to the registry and sends exactly one welcome notification to the user's name.
func (s *Service) AddUser(ctx context.Context, user *User) {
	start := time.Now()
	ctx, span := s.startOperationSpan(ctx, OperationAddUser, map[string]string{logAttrUserID: userIDLabel(user.ID)})

	s.mu.Lock()
	defer s.mu.Unlock()

	s.registry = append(s.registry, user)
	s.record(ctx, circulation.BuildUserRegistered(user.ID, user.Name, s.now()), uuid.Nil)
	s.notify(ctx, user.Name, subjectWelcome, messageWelcome)

	s.finishOperation(ctx, span, OperationAddUser, StatusSuccess, time.Since(start),
		logAttrUserID, user.ID)
}

// Borrow lends the first available book with the given ISBN to the first user with the given ID.
//
// It returns false, without any mutation or notification, if no available book or no user matches.
// Otherwise, the book becomes unavailable, a Loan due after the given number of days is appended
// to the ledger, the user is notified, and true is returned. Days are not validated.
func (s *Service) Borrow(ctx context.Context, userID UserIDInt, isbn ISBNString, days int) bool {
	start := time.Now()
	ctx, span := s.startOperationSpan(ctx, OperationBorrow, map[string]string{
		logAttrISBN:   isbn,
		logAttrUserID: userIDLabel(userID),
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	book := s.findAvailableBook(ctx, isbn)
	user := s.findUser(ctx, userID)

	if book == nil || user == nil {
		reason := RejectReasonBookNotAvailable
		if book != nil {
			reason = RejectReasonUserNotRegistered
		}

		s.record(ctx, circulation.BuildLendingBookFailed(isbn, userID, reason, s.now()), uuid.Nil)
		s.recordBorrowRejected(ctx, reason)
		s.finishOperation(ctx, span, OperationBorrow, StatusRejected, time.Since(start),
			logAttrISBN, isbn, logAttrUserID, userID, logAttrReason, reason)

		return false
	}

	now := s.now()
	book.Available = false
	loan := BuildLoan(book, user, now, days)
	s.ledger = append(s.ledger, loan)

	s.record(ctx, circulation.BuildBookLentToUser(loan.ID, isbn, userID, loan.DueAt, now), loan.ID)
	s.notify(ctx, user.Name, subjectLoan, loanMessage(book))
	s.recordOpenLoans(ctx)

	s.finishOperation(ctx, span, OperationBorrow, StatusSuccess, time.Since(start),
		logAttrISBN, isbn, logAttrUserID, userID, logAttrDays, days)

	return true
}

// ReturnBook closes the first open loan matching the ISBN and the user ID and returns its fine.
//
// It returns NoOpenLoanFine (-1) if no such loan exists. Otherwise, the return date is set to now,
// the book becomes available again, and the fine is computed with Loan.Fine. The user is notified
// only if the fine is greater than zero.
func (s *Service) ReturnBook(ctx context.Context, isbn ISBNString, userID UserIDInt) float64 {
	start := time.Now()
	ctx, span := s.startOperationSpan(ctx, OperationReturnBook, map[string]string{
		logAttrISBN:   isbn,
		logAttrUserID: userIDLabel(userID),
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	loan := s.findOpenLoan(ctx, isbn, userID)
	if loan == nil {
		s.record(ctx, circulation.BuildReturningBookFailed(isbn, userID, RejectReasonNoOpenLoan, s.now()), uuid.Nil)
		s.finishOperation(ctx, span, OperationReturnBook, StatusRejected, time.Since(start),
			logAttrISBN, isbn, logAttrUserID, userID, logAttrReason, RejectReasonNoOpenLoan)

		return NoOpenLoanFine
	}

	now := s.now()
	loan.markReturned(now)
	loan.Book.Available = true
	fine := loan.Fine()

	s.record(ctx, circulation.BuildBookReturnedByUser(loan.ID, isbn, userID, loan.DaysLate(), fine, now), loan.ID)

	if fine > 0 {
		s.notify(ctx, loan.User.Name, subjectLateFine, fineMessage(fine))
		s.recordFine(ctx, fine)
	}

	s.recordOpenLoans(ctx)
	s.finishOperation(ctx, span, OperationReturnBook, StatusSuccess, time.Since(start),
		logAttrISBN, isbn, logAttrUserID, userID, logAttrFine, fine)

	return fine
}

// ListBooks returns the live catalog. Callers observe later in-place mutations.
func (s *Service) ListBooks() []*Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.catalog
}

// ListUsers returns the live registry.
func (s *Service) ListUsers() []*User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.registry
}

// ListLoans returns the live ledger, open and closed loans in creation order.
func (s *Service) ListLoans() []*Loan {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger
}

// findAvailableBook returns the first available book with the ISBN in insertion order (caller must hold lock).
func (s *Service) findAvailableBook(ctx context.Context, isbn ISBNString) *Book {
	for _, book := range s.catalog {
		if book.ISBN == isbn && book.Available {
			s.logLookup(ctx, "catalog", true, logAttrISBN, isbn)
			return book
		}
	}

	s.logLookup(ctx, "catalog", false, logAttrISBN, isbn)

	return nil
}

// findUser returns the first user with the ID in insertion order (caller must hold lock).
func (s *Service) findUser(ctx context.Context, userID UserIDInt) *User {
	for _, user := range s.registry {
		if user.ID == userID {
			s.logLookup(ctx, "registry", true, logAttrUserID, userID)
			return user
		}
	}

	s.logLookup(ctx, "registry", false, logAttrUserID, userID)

	return nil
}

// findOpenLoan returns the first open loan for the ISBN and user ID in creation order (caller must hold lock).
func (s *Service) findOpenLoan(ctx context.Context, isbn ISBNString, userID UserIDInt) *Loan {
	for _, loan := range s.ledger {
		if loan.IsOpen() && loan.matches(isbn, userID) {
			s.logLookup(ctx, "ledger", true, logAttrISBN, isbn, logAttrUserID, userID)
			return loan
		}
	}

	s.logLookup(ctx, "ledger", false, logAttrISBN, isbn, logAttrUserID, userID)

	return nil
}

func (s *Service) countOpenLoans() int {
	open := 0
	for _, loan := range s.ledger {
		if loan.IsOpen() {
			open++
		}
	}

	return open
}
