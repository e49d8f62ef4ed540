package codec

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/unkn0wn-root/hexcodec"
	"github.com/unkn0wn-root/hexcodec/handler"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type user struct {
	ID      string    `json:"id" cbor:"id" msgpack:"id"`
	Name    string    `json:"name" cbor:"name" msgpack:"name"`
	Created time.Time `json:"created" cbor:"created" msgpack:"created"`
}

func isUpperHex(b []byte) bool {
	s := string(b)
	return hexcodec.Valid(s) && strings.ToUpper(s) == s
}

func TestHexCodec(t *testing.T) {
	enc, err := Hex{}.Encode([]byte{0x00, 0xFF, 0x1A})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(enc) != "00FF1A" {
		t.Fatalf("Encode = %q", enc)
	}
	dec, err := Hex{}.Decode([]byte("00ff1a"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(dec, []byte{0x00, 0xFF, 0x1A}) {
		t.Fatalf("Decode = %x", dec)
	}
	if _, err := (Hex{}).Decode([]byte("A")); !errors.Is(err, hexcodec.ErrInvalidLength) {
		t.Fatalf("odd input err = %v", err)
	}
	if _, err := (Hex{}).Decode([]byte("GZ")); !errors.Is(err, hexcodec.ErrInvalidDigit) {
		t.Fatalf("bad digit err = %v", err)
	}
}

func TestArmorRoundTrips(t *testing.T) {
	u := user{ID: "1", Name: "Ada", Created: time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)}

	cases := []struct {
		name  string
		codec Codec[user]
	}{
		{"json", JSON[user]{}},
		{"cbor", MustCBOR[user](false)},
		{"cbor-det", MustCBOR[user](true)},
		{"msgpack", Msgpack[user]{}},
	}
	for _, tc := range cases {
		a := Armor[user]{Inner: tc.codec}
		text, err := a.Encode(u)
		if err != nil {
			t.Fatalf("%s: Encode: %v", tc.name, err)
		}
		if !isUpperHex(text) {
			t.Fatalf("%s: armored output is not uppercase hex: %q", tc.name, text)
		}
		got, err := a.Decode(text)
		if err != nil {
			t.Fatalf("%s: Decode: %v", tc.name, err)
		}
		if got.ID != u.ID || got.Name != u.Name || !got.Created.Equal(u.Created) {
			t.Fatalf("%s: round trip mismatch: got=%+v want=%+v", tc.name, got, u)
		}
	}
}

func TestArmorDecodeAcceptsLowercase(t *testing.T) {
	a := Armor[string]{Inner: String{}}
	got, err := a.Decode([]byte(strings.ToLower("68656C6C6F")))
	if err != nil || got != "hello" {
		t.Fatalf("Decode = %q err=%v", got, err)
	}
}

func TestArmorRejectsInvalidText(t *testing.T) {
	a := Armor[[]byte]{Inner: Bytes{}}
	_, err := a.Decode([]byte("0Q"))
	var derr *hexcodec.InvalidDigitError
	if !errors.As(err, &derr) || derr.Pos != 1 {
		t.Fatalf("err = %v want InvalidDigitError at 1", err)
	}
}

func TestCBORDeterministicIsStable(t *testing.T) {
	c := Armor[map[string]int]{Inner: MustCBOR[map[string]int](true)}
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	first, err := c.Encode(m)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := c.Encode(m)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic CBOR produced different text")
		}
	}
}

func TestArmorProtobuf(t *testing.T) {
	pb := NewProtobuf(func() *wrapperspb.BytesValue { return &wrapperspb.BytesValue{} })
	a := Armor[*wrapperspb.BytesValue]{Inner: pb}

	in := wrapperspb.Bytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	text, err := a.Encode(in)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !isUpperHex(text) {
		t.Fatalf("not hex: %q", text)
	}
	out, err := a.Decode(text)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch: %v vs %v", in, out)
	}
}

func TestLimitCodec(t *testing.T) {
	c := LimitCodec[[]byte]{Inner: Hex{}, MaxDecode: 4}
	if _, err := c.Decode([]byte("0102")); err != nil {
		t.Fatalf("within limit: %v", err)
	}
	_, err := c.Decode([]byte("010203"))
	var tl *TooLargeError
	if !errors.As(err, &tl) || tl.Size != 6 || tl.Limit != 4 {
		t.Fatalf("err = %v want TooLargeError{6,4}", err)
	}
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("errors.Is(ErrTooLarge) = false")
	}

	unlimited := LimitCodec[[]byte]{Inner: Hex{}}
	if _, err := unlimited.Decode([]byte(strings.Repeat("AB", 1024))); err != nil {
		t.Fatalf("disabled limit: %v", err)
	}
}

func TestLimitForHandler(t *testing.T) {
	if c, err := LimitFor[[]byte](Hex{}, handler.Default()); err != nil || c.MaxDecode != 0 {
		t.Fatalf("unlimited handler MaxDecode = %d err = %v want 0", c.MaxDecode, err)
	}
	c, err := LimitFor[[]byte](Hex{}, handler.Message{MaxMessageSize: 2})
	if err != nil {
		t.Fatalf("LimitFor: %v", err)
	}
	if _, err := c.Decode([]byte("AB")); err != nil {
		t.Fatalf("within handler limit: %v", err)
	}
	if _, err := c.Decode([]byte("ABCD")); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v want ErrTooLarge", err)
	}
}

func TestLimitForRejectsInvalidHandler(t *testing.T) {
	for _, m := range []handler.Message{{}, {MaxMessageSize: -2}} {
		if _, err := LimitFor[[]byte](Hex{}, m); !errors.Is(err, handler.ErrInvalidMaxMessageSize) {
			t.Fatalf("max %d: err = %v want ErrInvalidMaxMessageSize", m.MaxMessageSize, err)
		}
	}
}

func TestLimitForClampsHugeLimit(t *testing.T) {
	c, err := LimitFor[[]byte](Hex{}, handler.Message{MaxMessageSize: math.MaxInt64})
	if err != nil {
		t.Fatalf("LimitFor: %v", err)
	}
	if c.MaxDecode != math.MaxInt {
		t.Fatalf("MaxDecode = %d want %d", c.MaxDecode, math.MaxInt)
	}
	if _, err := c.Decode([]byte("6869")); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestJSONRejectsTrailingData(t *testing.T) {
	if _, err := (JSON[user]{}).Decode([]byte(`{"id":"1"}{"id":"2"}`)); err == nil {
		t.Fatalf("expected error on concatenated values")
	}
	if _, err := (JSON[user]{}).Decode([]byte(`{"id":"1"}` + "\n")); err != nil {
		t.Fatalf("trailing whitespace should be accepted: %v", err)
	}
}
