package wire

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/unkn0wn-root/hexcodec"
)

const (
	version byte = '1'
	sep     byte = ':'
	hdr          = 4 // magic(2) | ver(1) | sep(1)
)

var (
	ErrCorrupt = errors.New("hexcodec: corrupt entry")
	magic2     = [...]byte{'H', 'X'}
)

// Encode frames payload as printable text:
//
//	magic("HX") | ver('1') | ':' | HEX(payload)
func Encode(payload []byte) []byte {
	buf := make([]byte, 0, hdr+hexcodec.EncodedLen(len(payload)))
	buf = append(buf, magic2[:]...)
	buf = append(buf, version, sep)
	return hexcodec.AppendEncode(buf, payload)
}

// Decode validates the frame and returns a freshly allocated payload.
// Any violation is reported as ErrCorrupt; a bad body also wraps the
// hexcodec error that caused it.
func Decode(b []byte) ([]byte, error) {
	if len(b) < hdr || !bytes.Equal(b[:2], magic2[:]) || b[2] != version || b[3] != sep {
		return nil, ErrCorrupt
	}
	payload, err := hexcodec.Decode(string(b[hdr:]))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return payload, nil
}
