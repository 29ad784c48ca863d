package notifier

import (
	"context"
	"fmt"
	"io"
)

// ChannelEmail is the configuration name of the EmailNotifier.
const ChannelEmail = "email"

// EmailNotifier renders notifications as e-mail lines.
type EmailNotifier struct {
	base
}

// NewEmailNotifier creates an EmailNotifier which writes to out.
func NewEmailNotifier(out io.Writer, options ...Option) (*EmailNotifier, error) {
	b, err := newBase(ChannelEmail, out, options)
	if err != nil {
		return nil, err
	}

	return &EmailNotifier{base: b}, nil
}

// Send writes one line "[EMAIL] To: <recipient> | Subject: <subject> | Msg: <message>".
func (n *EmailNotifier) Send(_ context.Context, recipient string, subject string, message string) {
	n.writeLine(recipient, fmt.Appendf(nil, "[EMAIL] To: %s | Subject: %s | Msg: %s", recipient, subject, message))
}
