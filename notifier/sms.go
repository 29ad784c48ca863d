package notifier

import (
	"context"
	"fmt"
	"io"
)

// ChannelSMS is the configuration name of the SMSNotifier.
const ChannelSMS = "sms"

// SMSNotifier renders notifications as short messages. The subject is dropped.
type SMSNotifier struct {
	base
}

// NewSMSNotifier creates an SMSNotifier which writes to out.
func NewSMSNotifier(out io.Writer, options ...Option) (*SMSNotifier, error) {
	b, err := newBase(ChannelSMS, out, options)
	if err != nil {
		return nil, err
	}

	return &SMSNotifier{base: b}, nil
}

// Send writes one line "[SMS] To: <recipient> | Msg: <message>".
func (n *SMSNotifier) Send(_ context.Context, recipient string, _ string, message string) {
	n.writeLine(recipient, fmt.Appendf(nil, "[SMS] To: %s | Msg: %s", recipient, message))
}
