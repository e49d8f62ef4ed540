package codec

var (
	_ Codec[[]byte] = Bytes{}
	_ Codec[string] = String{}
)

// Bytes passes []byte values through untouched. Wrapped in Armor it is a
// plain bytes-to-hex codec.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String converts between string and []byte. No UTF-8 validation.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
