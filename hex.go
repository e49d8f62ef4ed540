package hexcodec

const hextable = "0123456789ABCDEF"

// invalid marks a byte that is not a hex digit in reverse.
const invalid = 0xFF

// reverse maps an ASCII byte to its nibble value, or invalid.
var reverse = func() (t [256]byte) {
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < 16; i++ {
		t[hextable[i]] = byte(i)
	}
	for i := 10; i < 16; i++ {
		t['a'+i-10] = byte(i)
	}
	return t
}()

// EncodedLen returns the length of the hex encoding of n bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the number of bytes decoded from n hex characters.
// n is expected to be even.
func DecodedLen(n int) int { return n / 2 }

// Encode returns the uppercase hex representation of b.
// Every byte becomes two characters, high nibble first.
func Encode(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(b))), b))
}

// AppendEncode appends the uppercase hex representation of src to dst
// and returns the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	for _, v := range src {
		dst = append(dst, hextable[v>>4], hextable[v&0x0F])
	}
	return dst
}

// Decode parses s as hex digits, accepting both upper and lower case.
//
// An odd-length input fails with *InvalidLengthError before any digit is
// inspected. A character outside 0-9A-Fa-f fails with *InvalidDigitError
// naming its offset. On error no bytes are returned. The empty string
// decodes to an empty, non-nil slice.
func Decode(s string) ([]byte, error) {
	if err := validate(s); err != nil {
		return nil, err
	}
	out := make([]byte, DecodedLen(len(s)))
	for i := range out {
		out[i] = reverse[s[2*i]]<<4 | reverse[s[2*i+1]]
	}
	return out, nil
}

// Valid reports whether Decode would accept s.
func Valid(s string) bool { return validate(s) == nil }

func validate(s string) error {
	if len(s)%2 != 0 {
		return &InvalidLengthError{Len: len(s)}
	}
	for i := 0; i < len(s); i++ {
		if reverse[s[i]] == invalid {
			return &InvalidDigitError{Pos: i, Char: s[i]}
		}
	}
	return nil
}
