package codec

import "github.com/unkn0wn-root/hexcodec"

// Hex is a Codec for raw bytes whose encoded form is uppercase hex text.
// Decode accepts either case and returns the typed hexcodec errors.
// The zero value is ready to use.
type Hex struct{}

var _ Codec[[]byte] = Hex{}

func (Hex) Encode(b []byte) ([]byte, error) {
	return hexcodec.AppendEncode(make([]byte, 0, hexcodec.EncodedLen(len(b))), b), nil
}

func (Hex) Decode(text []byte) ([]byte, error) {
	return hexcodec.Decode(string(text))
}

// Armor wraps a codec so that its output is hex text: Encode runs Inner and
// then hex-encodes, Decode reverses both steps. Useful when the transport
// or store only carries printable ASCII.
type Armor[V any] struct {
	// Inner is the wrapped codec. It must be set.
	Inner Codec[V]
}

func (a Armor[V]) Encode(v V) ([]byte, error) {
	raw, err := a.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return Hex{}.Encode(raw)
}

func (a Armor[V]) Decode(text []byte) (V, error) {
	raw, err := Hex{}.Decode(text)
	if err != nil {
		var zero V
		return zero, err
	}
	return a.Inner.Decode(raw)
}
