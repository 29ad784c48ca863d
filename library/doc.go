// Package library provides an in-memory lending service for a small public library.
//
// The package keeps three collections: the catalog (books), the registry (users) and
// the ledger (loans, open and closed, in creation order). All of them are owned by a
// single Service, which implements the loan lifecycle:
//
//	borrow -> return -> fine calculation
//
// and delegates user-facing messages to a pluggable Notifier.
//
// Lookups are linear scans where the first match wins, and no uniqueness is enforced
// for ISBNs or user IDs. Failures are reported with sentinel values instead of errors:
//   - Borrow returns false when no available book or no user matches
//   - ReturnBook returns NoOpenLoanFine (-1) when no open loan matches
//
// Common usage pattern:
//
//	svc, err := library.NewService(notifier.NewEmailNotifier(os.Stdout))
//	if err != nil {
//		// handle error
//	}
//
//	svc.AddBook(ctx, library.BuildBook("Clean Code", "Robert C. Martin", "978-0132350884"))
//	svc.AddUser(ctx, library.BuildUser("Ana", 1))
//
//	if svc.Borrow(ctx, 1, "978-0132350884", 7) {
//		fine := svc.ReturnBook(ctx, "978-0132350884", 1)
//		// fine is 0 when returned in time
//	}
//
// Observability is optional and dependency-free: Logger, ContextualLogger,
// MetricsCollector and TracingCollector can be plugged in with functional options.
package library
