// Package circulation contains the domain events of the library's circulation:
// books added to the catalog, users registered, books lent and returned, and the
// failed attempts to lend or return a book.
//
// Events are plain values implementing DomainEvent. The mapping functions in this
// package translate them to and from journal.StorableEvent using JSON payloads,
// so they can be recorded in and projected from a journal.
package circulation
