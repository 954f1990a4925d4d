package rapidb64

import "errors"

// Block geometry of the vector path: eight triplets per 256-bit register.
const (
	blockBytes = 24
	blockChars = 32
)

// A kernel converts whole blocks from the front of its input and reports how
// far it got. It never pads, never reports errors and never touches the
// tail; whatever it leaves is finished by the generic codec. A new vector
// backend (NEON, AVX-512) is another kernel.
type kernel interface {
	// encodeBlocks encodes leading 24-byte blocks of src into 32-character
	// blocks of dst.
	encodeBlocks(dst, src []byte) (nSrc, nDst int)

	// decodeBlocks decodes leading 32-character blocks of src into 24-byte
	// blocks of dst. It stops early at any block containing a byte outside
	// the alphabet, and always leaves the final quartet (which may carry
	// padding) alone.
	decodeBlocks(dst, src []byte) (nSrc, nDst int)

	name() string
}

// vectorCodec runs a kernel over the bulk of the input and hands the exact
// remainder to the generic codec.
type vectorCodec struct {
	k kernel
}

func (c vectorCodec) encode(dst, src []byte) int {
	nSrc, nDst := c.k.encodeBlocks(dst, src)
	if nSrc == len(src) {
		return nDst
	}
	return nDst + encodeGeneric(dst[nDst:], src[nSrc:])
}

func (c vectorCodec) decode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}
	// Reject a bad length before any block is written.
	if err := checkDecodeLen(len(src)); err != nil {
		return 0, err
	}

	nSrc, nDst := c.k.decodeBlocks(dst, src)

	// The generic decoder re-checks everything the kernel declined, so an
	// invalid byte is always reported by it, at its offset in the full input.
	n, err := decodeGeneric(dst[nDst:], src[nSrc:])
	if err != nil {
		var ice *InvalidCharacterError
		if errors.As(err, &ice) {
			ice.Offset += nSrc
		}
		return nDst + n, err
	}
	return nDst + n, nil
}

func (c vectorCodec) name() string {
	return c.k.name()
}
