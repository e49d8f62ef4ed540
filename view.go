package hexcodec

import (
	"bytes"
	"io"
)

// View is a read-only view over decoded bytes. Slicing a View shares the
// backing array; nothing handed out by a View can be used to mutate it.
// The zero value is an empty view.
type View struct {
	b []byte
}

// DecodeView decodes s and wraps the result without copying it again.
func DecodeView(s string) (View, error) {
	b, err := Decode(s)
	if err != nil {
		return View{}, err
	}
	return View{b: b}, nil
}

func (v View) Len() int { return len(v.b) }

// At returns the byte at index i. It panics if i is out of range.
func (v View) At(i int) byte { return v.b[i] }

// Bytes returns a copy of the viewed bytes.
func (v View) Bytes() []byte {
	c := make([]byte, len(v.b))
	copy(c, v.b)
	return c
}

// Slice returns the sub-view [i:j].
func (v View) Slice(i, j int) View { return View{b: v.b[i:j:j]} }

// Reader returns a reader over the viewed bytes.
func (v View) Reader() *bytes.Reader { return bytes.NewReader(v.b) }

func (v View) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v.b)
	return int64(n), err
}

func (v View) Equal(o View) bool { return bytes.Equal(v.b, o.b) }

// String returns the uppercase hex encoding of the view.
func (v View) String() string { return Encode(v.b) }
