// Package hexcodec converts between raw bytes and their hexadecimal text form.
//
// Encoding is total and always emits uppercase digits. Decoding accepts
// either case and rejects odd-length input (*InvalidLengthError) or any
// character outside 0-9A-Fa-f (*InvalidDigitError) without returning a
// partial result:
//
//	s := hexcodec.Encode([]byte{0x00, 0xFF, 0x1A}) // "00FF1A"
//	b, err := hexcodec.Decode("00ff1a")             // []byte{0x00, 0xFF, 0x1A}
//
// Both functions are pure and safe for concurrent use.
//
// Components built on top:
//   - codec: Codec[V] implementations, plus Armor to carry any of them as hex text.
//   - store: a text-safe byte store that frames entries as hex over a Provider.
//   - provider: byte stores (Redis, Ristretto, BigCache).
//   - handler: the inert message-handler configuration record.
package hexcodec
