package notifier

import (
	"context"
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// ChannelJSON is the configuration name of the JSONNotifier.
const ChannelJSON = "json"

// JSONNotification is the wire format of one line written by the JSONNotifier.
type JSONNotification struct {
	Channel   string    `json:"channel"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	SentAt    time.Time `json:"sentAt"`
}

// JSONNotifier renders each notification as one JSON object per line, e.g. for log shippers.
type JSONNotifier struct {
	base
}

// NewJSONNotifier creates a JSONNotifier which writes to out.
func NewJSONNotifier(out io.Writer, options ...Option) (*JSONNotifier, error) {
	b, err := newBase(ChannelJSON, out, options)
	if err != nil {
		return nil, err
	}

	return &JSONNotifier{base: b}, nil
}

// Send writes the notification as one JSON line.
func (n *JSONNotifier) Send(_ context.Context, recipient string, subject string, message string) {
	line, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(JSONNotification{
		Channel:   ChannelJSON,
		Recipient: recipient,
		Subject:   subject,
		Message:   message,
		SentAt:    n.now().UTC(),
	})
	if err != nil {
		n.logWriteFailed(recipient, err)
		return
	}

	n.writeLine(recipient, line)
}
