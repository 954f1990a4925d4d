package rapidb64

// EncodedLen returns the length of the padded Base64 encoding of n bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum number of bytes n characters of Base64 can
// decode to. The exact length is known only once the trailing padding has
// been seen, so destinations sized to DecodedLen are always large enough.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// decodedLen returns the exact decoded length of src, assuming its length is
// already known to be a valid multiple of 4.
func decodedLen(src []byte) int {
	n := DecodedLen(len(src))
	if len(src) == 0 {
		return 0
	}
	if src[len(src)-1] == padChar {
		n--
		if src[len(src)-2] == padChar {
			n--
		}
	}
	return n
}

// checkDecodeLen validates the length contract shared by every decoder.
func checkDecodeLen(n int) error {
	if n%4 != 0 {
		return InputLengthError(n)
	}
	return nil
}
