package notifier

import (
	"errors"
	"io"
	"strings"

	"github.com/AntonStoeckl/library-loans-go/library"
)

// ErrUnknownChannel is returned when Build is called with a channel name it does not know.
var ErrUnknownChannel = errors.New("unknown notification channel")

// Channels lists the channel names Build understands.
func Channels() []string {
	return []string{ChannelEmail, ChannelSMS, ChannelJSON}
}

// Build creates the channel with the given name, which is matched case-insensitively.
// Several channels can be combined with a comma, e.g. "email,sms", which yields a FanOutNotifier.
func Build(channel string, out io.Writer, options ...Option) (library.Notifier, error) {
	names := strings.Split(channel, ",")
	if len(names) > 1 {
		notifiers := make([]library.Notifier, 0, len(names))
		for _, name := range names {
			n, err := Build(name, out, options...)
			if err != nil {
				return nil, err
			}

			notifiers = append(notifiers, n)
		}

		return NewFanOutNotifier(notifiers...), nil
	}

	var n library.Notifier
	var err error

	switch strings.ToLower(strings.TrimSpace(channel)) {
	case ChannelEmail:
		n, err = NewEmailNotifier(out, options...)
	case ChannelSMS:
		n, err = NewSMSNotifier(out, options...)
	case ChannelJSON:
		n, err = NewJSONNotifier(out, options...)
	default:
		return nil, errors.Join(ErrUnknownChannel, errors.New(channel))
	}

	if err != nil {
		return nil, err
	}

	return n, nil
}
