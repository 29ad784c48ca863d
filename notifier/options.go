package notifier

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/AntonStoeckl/library-loans-go/library"
)

// ErrNilClock is returned when WithClock is called with a nil clock.
var ErrNilClock = errors.New("clock must not be nil")

// Option defines a functional option for configuring a channel.
type Option func(*base) error

// WithLogger sets the logger which receives write failures at Error level.
func WithLogger(logger library.Logger) Option {
	return func(b *base) error {
		b.logger = logger
		return nil
	}
}

// WithClock sets the time source for the sentAt field of the JSONNotifier. Defaults to time.Now.
func WithClock(clock library.Clock) Option {
	return func(b *base) error {
		if clock == nil {
			return ErrNilClock
		}

		b.now = clock

		return nil
	}
}

func applyOptions(b *base, options []Option) error {
	for _, option := range options {
		if err := option(b); err != nil {
			return err
		}
	}

	return nil
}

func newBase(channel string, out io.Writer, options []Option) (base, error) {
	b := base{channel: channel, now: time.Now, mu: &sync.Mutex{}, out: out}

	if err := applyOptions(&b, options); err != nil {
		return base{}, err
	}

	return b, nil
}
