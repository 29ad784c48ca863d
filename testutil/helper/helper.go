package helper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/library-loans-go/circulation"
	"github.com/AntonStoeckl/library-loans-go/journal"
	"github.com/AntonStoeckl/library-loans-go/library"
)

// GivenServiceWith creates a library.Service with the given Notifier and options, failing the test on error.
func GivenServiceWith(t testing.TB, notifier library.Notifier, options ...library.Option) *library.Service {
	service, err := library.NewService(notifier, options...)
	require.NoError(t, err, "error in arranging test data")

	return service
}

// GivenBooksInCatalog adds the given books to the service's catalog.
func GivenBooksInCatalog(ctx context.Context, service *library.Service, books ...*library.Book) {
	for _, book := range books {
		service.AddBook(ctx, book)
	}
}

// GivenUsersInRegistry adds the given users to the service's registry.
func GivenUsersInRegistry(ctx context.Context, service *library.Service, users ...*library.User) {
	for _, user := range users {
		service.AddUser(ctx, user)
	}
}

// GivenStorableEventFrom maps a domain event to a StorableEvent with fresh metadata, failing the test on error.
func GivenStorableEventFrom(t testing.TB, event circulation.DomainEvent) journal.StorableEvent {
	storableEvent, err := circulation.StorableEventFrom(event, GivenEventMetadata())
	assert.NoError(t, err, "error in arranging test data")

	return storableEvent
}

// GivenEventsAppended appends the given domain events to the journal, failing the test on error.
func GivenEventsAppended(t testing.TB, ctx context.Context, eventJournal *journal.MemoryJournal, events ...circulation.DomainEvent) {
	for _, event := range events {
		err := eventJournal.Append(ctx, GivenStorableEventFrom(t, event))
		require.NoError(t, err, "error in arranging test data")
	}
}

// GivenEventMetadata returns metadata where message, causation and correlation ID are the same fresh UUID.
func GivenEventMetadata() circulation.EventMetadata {
	id := GivenUniqueID()
	return circulation.BuildEventMetadata(id, id, id)
}

// FixedTime returns a stable point in time used as "now" by test clocks.
func FixedTime() time.Time {
	return time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
}
