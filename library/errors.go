package library

import (
	"errors"
)

var (
	// ErrNilNotifier is returned by NewService when no Notifier is supplied.
	ErrNilNotifier = errors.New("notifier must not be nil")

	// ErrNilClock is returned when a nil Clock is provided to WithClock.
	ErrNilClock = errors.New("clock must not be nil")

	// ErrNilJournal is returned when a nil EventJournal is provided to WithJournal.
	ErrNilJournal = errors.New("event journal must not be nil")
)
