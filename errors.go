package rapidb64

import (
	"errors"
	"fmt"
)

var (
	ErrInputLength       = errors.New("[rapidb64] input length is not a multiple of 4")
	ErrInvalidCharacter  = errors.New("[rapidb64] invalid character in input")
	ErrBufferTooSmall    = errors.New("[rapidb64] destination buffer too small")
	ErrKernelUnsupported = errors.New("[rapidb64] kernel not supported on this cpu")

	// ErrUnknown wraps failures of the reader or writer behind an Encoder or
	// Decoder. The codec functions themselves never return it.
	ErrUnknown = errors.New("[rapidb64] unknown codec error")
)

// InputLengthError is returned when the length of Base64 input is not a
// positive multiple of 4. The value is the offending length.
type InputLengthError int

func (e InputLengthError) Error() string {
	return fmt.Sprintf("[rapidb64] input length %d is not a multiple of 4", int(e))
}

func (e InputLengthError) Is(target error) bool {
	return target == ErrInputLength
}

// InvalidCharacterError reports the first byte of the input that is not part
// of the alphabet, including '=' anywhere but the last two positions.
type InvalidCharacterError struct {
	Offset int  // offset of Char in the input
	Char   byte // the offending byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("[rapidb64] invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// invalidIn pinpoints the bad byte in src[i:i+n] after a combined lookup
// over those bytes has failed.
func invalidIn(src []byte, i, n int) error {
	for j := i; j < i+n; j++ {
		if decodeTable[src[j]] == badChar {
			return &InvalidCharacterError{Offset: j, Char: src[j]}
		}
	}
	// Unreachable while decodeTable and decodeShift agree.
	return &InvalidCharacterError{Offset: i, Char: src[i]}
}

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrUnknown, err)
}
