package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSON is a Codec backed by encoding/json. Decode rejects trailing data
// after the first value, so a truncated or concatenated entry fails instead
// of decoding partially.
type JSON[V any] struct{}

var _ Codec[struct{}] = JSON[struct{}]{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	dec := json.NewDecoder(bytes.NewReader(b))
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	if dec.More() {
		var zero V
		return zero, fmt.Errorf("codec: trailing data after JSON value at offset %d", dec.InputOffset())
	}
	return v, nil
}
