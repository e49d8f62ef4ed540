// Package codec converts values to bytes and back. Any codec can be carried
// as uppercase hex text by wrapping it in Armor.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
