package notifier

import (
	"context"

	"github.com/AntonStoeckl/library-loans-go/library"
)

// FanOutNotifier forwards every notification to all of its notifiers, in the given order.
type FanOutNotifier struct {
	notifiers []library.Notifier
}

// NewFanOutNotifier creates a FanOutNotifier. Nil notifiers are skipped.
func NewFanOutNotifier(notifiers ...library.Notifier) *FanOutNotifier {
	nonNil := make([]library.Notifier, 0, len(notifiers))
	for _, n := range notifiers {
		if n != nil {
			nonNil = append(nonNil, n)
		}
	}

	return &FanOutNotifier{notifiers: nonNil}
}

// Send forwards the notification to every notifier.
func (f *FanOutNotifier) Send(ctx context.Context, recipient string, subject string, message string) {
	for _, n := range f.notifiers {
		n.Send(ctx, recipient, subject, message)
	}
}
