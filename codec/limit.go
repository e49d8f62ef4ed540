package codec

import (
	"errors"
	"fmt"
	"math"

	"github.com/unkn0wn-root/hexcodec/handler"
)

var ErrTooLarge = errors.New("codec: payload too large")

// TooLargeError reports a payload rejected by LimitCodec.
type TooLargeError struct {
	Size  int
	Limit int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("codec: payload too large: %d > %d", e.Size, e.Limit)
}

func (e *TooLargeError) Is(target error) bool { return target == ErrTooLarge }

// LimitCodec wraps another codec to enforce a maximum payload size at
// Decode time. Encode is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
type LimitCodec[V any] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted length in bytes of the incoming
	// payload. Larger payloads fail without invoking Inner.
	MaxDecode int
}

// LimitFor builds a LimitCodec that enforces a handler's MaxMessageSize.
// An unlimited handler disables the check; sizes beyond math.MaxInt are
// clamped. m must pass Validate.
func LimitFor[V any](inner Codec[V], m handler.Message) (LimitCodec[V], error) {
	if err := m.Validate(); err != nil {
		return LimitCodec[V]{}, err
	}
	c := LimitCodec[V]{Inner: inner}
	if !m.Unlimited() {
		c.MaxDecode = int(min(m.MaxMessageSize, int64(math.MaxInt)))
	}
	return c, nil
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, &TooLargeError{Size: len(b), Limit: c.MaxDecode}
	}
	return c.Inner.Decode(b)
}
