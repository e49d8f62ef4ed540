package hexcodec

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength = errors.New("hexcodec: invalid length")
	ErrInvalidDigit  = errors.New("hexcodec: invalid digit")
)

// InvalidLengthError reports a hex string whose length is not an even count.
type InvalidLengthError struct {
	Len int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("hexcodec: invalid string length %d (must be even)", e.Len)
}

func (e *InvalidLengthError) Is(target error) bool { return target == ErrInvalidLength }

// InvalidDigitError reports the first character outside 0-9A-Fa-f.
type InvalidDigitError struct {
	Pos  int  // byte offset in the input
	Char byte // offending byte
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("hexcodec: invalid digit %q at position %d", e.Char, e.Pos)
}

func (e *InvalidDigitError) Is(target error) bool { return target == ErrInvalidDigit }
