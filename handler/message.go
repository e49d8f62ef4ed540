// Package handler holds the configuration attached to a method that receives
// inbound messages in a messaging framework. It carries no behavior: dispatch
// and discovery belong to whatever framework consumes the record.
package handler

import (
	"errors"
	"fmt"
)

// Unlimited is the MaxMessageSize meaning "no maximum".
const Unlimited int64 = -1

var ErrInvalidMaxMessageSize = errors.New("handler: invalid max message size")

// Message configures a message handler.
type Message struct {
	// MaxMessageSize is the largest message, in bytes, the handler will
	// process, or -1 for no maximum.
	MaxMessageSize int64 `toml:"max_message_size" json:"max_message_size"`
}

// Default returns a Message with no size limit.
func Default() Message { return Message{MaxMessageSize: Unlimited} }

// Unlimited reports whether m puts no bound on message size.
func (m Message) Unlimited() bool { return m.MaxMessageSize < 0 }

// Allows reports whether an n-byte message fits within m.
func (m Message) Allows(n int) bool {
	return m.Unlimited() || int64(n) <= m.MaxMessageSize
}

// Validate accepts -1 or a positive size.
func (m Message) Validate() error {
	if m.MaxMessageSize == Unlimited || m.MaxMessageSize > 0 {
		return nil
	}
	return fmt.Errorf("%w: %d", ErrInvalidMaxMessageSize, m.MaxMessageSize)
}
