package rapidb64

import "unsafe"

// Encode returns the padded Base64 encoding of src.
func Encode(src []byte) string {
	return encodeWith(defaultCodec(), src)
}

// AppendEncode appends the Base64 encoding of src to dst and returns the
// extended buffer.
func AppendEncode(dst, src []byte) []byte {
	return appendEncodeWith(defaultCodec(), dst, src)
}

// EncodeInto writes the Base64 encoding of src to dst and returns the number
// of bytes written. dst must hold EncodedLen(len(src)) bytes, otherwise
// ErrBufferTooSmall is returned and dst is left untouched.
func EncodeInto(dst, src []byte) (int, error) {
	return encodeIntoWith(defaultCodec(), dst, src)
}

// Decode returns the bytes represented by the padded Base64 input src.
func Decode(src []byte) ([]byte, error) {
	return decodeWith(defaultCodec(), src)
}

// DecodeString is Decode for a string input.
func DecodeString(s string) ([]byte, error) {
	return decodeWith(defaultCodec(), unsafe.Slice(unsafe.StringData(s), len(s)))
}

// DecodeInto writes the bytes represented by src to dst and returns how many
// were written. Length errors are reported before the size of dst is
// considered; dst must then hold the exact decoded length of src or
// ErrBufferTooSmall is returned. On any error the contents of dst are
// unspecified.
func DecodeInto(dst, src []byte) (int, error) {
	return decodeIntoWith(defaultCodec(), dst, src)
}

func encodeWith(c codec, src []byte) string {
	if len(src) == 0 {
		return ""
	}
	buf := make([]byte, EncodedLen(len(src)))
	n := c.encode(buf, src)
	buf = buf[:n]
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}

func appendEncodeWith(c codec, dst, src []byte) []byte {
	n := EncodedLen(len(src))
	dst = growLen(dst, n)
	c.encode(dst[len(dst)-n:], src)
	return dst
}

func encodeIntoWith(c codec, dst, src []byte) (int, error) {
	if len(dst) < EncodedLen(len(src)) {
		return 0, ErrBufferTooSmall
	}
	return c.encode(dst, src), nil
}

func decodeWith(c codec, src []byte) ([]byte, error) {
	if err := checkDecodeLen(len(src)); err != nil {
		return nil, err
	}
	dst := make([]byte, decodedLen(src))
	n, err := c.decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func decodeIntoWith(c codec, dst, src []byte) (int, error) {
	if err := checkDecodeLen(len(src)); err != nil {
		return 0, err
	}
	if len(dst) < decodedLen(src) {
		return 0, ErrBufferTooSmall
	}
	return c.decode(dst, src)
}

// growLen extends b by n bytes, reallocating when the capacity is short.
func growLen(b []byte, n int) []byte {
	total := len(b) + n
	if total <= cap(b) {
		return b[:total]
	}
	nb := make([]byte, total, total+total/4)
	copy(nb, b)
	return nb
}
