package rapidb64

import (
	"fmt"
	"io"
)

// codec is one complete encoder/decoder: the generic codec on its own, or a
// kernel with the generic codec finishing its tail.
type codec interface {
	encode(dst, src []byte) int
	decode(dst, src []byte) (int, error)
	name() string
}

type genericCodec struct{}

func (genericCodec) encode(dst, src []byte) int {
	return encodeGeneric(dst, src)
}

func (genericCodec) decode(dst, src []byte) (int, error) {
	return decodeGeneric(dst, src)
}

func (genericCodec) name() string {
	return "generic"
}

// Kernel selects the block implementation behind a Codec.
type Kernel int

const (
	KernelAuto    Kernel = iota // what the package functions use on this cpu
	KernelGeneric               // portable triplet/quartet loop only
	KernelTable                 // 16-bit pair tables over whole blocks
	KernelAVX2                  // 256-bit blocks, requires AVX2 and GOEXPERIMENT=simd
)

func (k Kernel) String() string {
	switch k {
	case KernelAuto:
		return "auto"
	case KernelGeneric:
		return "generic"
	case KernelTable:
		return "table"
	case KernelAVX2:
		return "avx2"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

// ParseKernel returns the Kernel named s, as printed by Kernel.String.
func ParseKernel(s string) (Kernel, error) {
	for k := KernelAuto; k <= KernelAVX2; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("[rapidb64] unknown kernel %q", s)
}

// Kernels lists the kernels usable on this cpu, KernelAuto excluded.
func Kernels() []Kernel {
	ks := []Kernel{KernelGeneric, KernelTable}
	if hasAVX2() {
		ks = append(ks, KernelAVX2)
	}
	return ks
}

// Codec is a Base64 codec pinned to one kernel. The package level functions
// are what most callers want; a Codec exists for harnesses comparing
// kernels. A Codec is stateless and safe for concurrent use.
type Codec struct {
	kernel Kernel
	c      codec
}

// NewCodec returns a Codec using kernel k. KernelAVX2 fails with
// ErrKernelUnsupported when the cpu lacks AVX2 or the package was built
// without GOEXPERIMENT=simd.
func NewCodec(k Kernel) (*Codec, error) {
	switch k {
	case KernelAuto:
		return &Codec{kernel: k, c: defaultCodec()}, nil
	case KernelGeneric:
		return &Codec{kernel: k, c: genericCodec{}}, nil
	case KernelTable:
		return &Codec{kernel: k, c: vectorCodec{k: tableKernel{}}}, nil
	case KernelAVX2:
		if !hasAVX2() {
			return nil, fmt.Errorf("%w: %s", ErrKernelUnsupported, k)
		}
		return &Codec{kernel: k, c: avx2Codec()}, nil
	default:
		return nil, fmt.Errorf("[rapidb64] unknown kernel %d", int(k))
	}
}

// Kernel returns the kernel the Codec was created with.
func (c *Codec) Kernel() Kernel {
	return c.kernel
}

// Name returns the name of the implementation doing the work.
func (c *Codec) Name() string {
	return c.c.name()
}

// Encode returns the Base64 encoding of src.
func (c *Codec) Encode(src []byte) string {
	return encodeWith(c.c, src)
}

// AppendEncode appends the Base64 encoding of src to dst.
func (c *Codec) AppendEncode(dst, src []byte) []byte {
	return appendEncodeWith(c.c, dst, src)
}

// EncodeInto writes the Base64 encoding of src to dst and returns the number
// of bytes written, EncodedLen(len(src)).
func (c *Codec) EncodeInto(dst, src []byte) (int, error) {
	return encodeIntoWith(c.c, dst, src)
}

// Decode returns the bytes represented by the Base64 input src.
func (c *Codec) Decode(src []byte) ([]byte, error) {
	return decodeWith(c.c, src)
}

// DecodeInto writes the bytes represented by src to dst and returns how many
// were written.
func (c *Codec) DecodeInto(dst, src []byte) (int, error) {
	return decodeIntoWith(c.c, dst, src)
}

// NewEncoder returns an [Encoder] writing to w through this Codec.
func (c *Codec) NewEncoder(w io.Writer) *Encoder {
	return newEncoder(w, c.c)
}

// NewDecoder returns a [Decoder] reading from r through this Codec.
func (c *Codec) NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	return newDecoder(r, c.c, opts)
}
