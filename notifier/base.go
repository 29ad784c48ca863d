package notifier

import (
	"io"
	"sync"

	"github.com/AntonStoeckl/library-loans-go/library"
)

const (
	logMsgWriteFailed = "failed to write notification"
	logAttrChannel    = "channel"
	logAttrRecipient  = "recipient"
	logAttrError      = "error"
)

// base holds what all line-oriented channels share. Writes are serialized so lines never interleave.
type base struct {
	channel string
	logger  library.Logger
	now     library.Clock
	mu      *sync.Mutex
	out     io.Writer
}

func (b *base) writeLine(recipient string, line []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.out.Write(append(line, '\n')); err != nil {
		b.logWriteFailed(recipient, err)
	}
}

func (b *base) logWriteFailed(recipient string, err error) {
	if b.logger == nil {
		return
	}

	b.logger.Error(logMsgWriteFailed, logAttrChannel, b.channel, logAttrRecipient, recipient, logAttrError, err.Error())
}
