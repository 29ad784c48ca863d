// Package journal provides an in-memory, append-only event journal for circulation events.
//
// The journal stores StorableEvent DTOs which are agnostic of the domain event
// implementation. Events can be queried back with a Filter combining event types and
// predicates on top-level payload fields:
//
//	filter := journal.BuildEventFilter().
//		Matching().
//		AnyEventTypeOf(
//			circulation.BookLentToUserEventType,
//			circulation.BookReturnedByUserEventType).
//		AndAnyPredicateOf(journal.P("UserID", "1")).
//		Finalize()
//
//	events, maxSeq, err := j.Query(ctx, filter)
//
// Nothing is persisted, the journal lives as long as the process.
package journal
