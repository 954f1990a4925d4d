// Package ymm models the 256-bit AVX2 register operations used by the
// rapidb64 block kernels, one scalar loop per instruction.
//
// Every operation follows the lane semantics of the instruction it is named
// after, including the split of byte shuffles into two independent 128-bit
// halves. The kernels' tests run the same sequence of operations on Vec and
// compare it with the simd/archsimd build block for block. Loads and stores
// are bounds-checked slice copies.
package ymm

import "encoding/binary"

// Size is the width of a Vec in bytes, Half the width of one 128-bit lane.
const (
	Size = 32
	Half = Size / 2
)

// Vec is one 256-bit register, byte 0 being the least significant.
type Vec [Size]byte

// Load reads the first 32 bytes of src (vmovdqu).
func Load(src []byte) Vec {
	var v Vec
	copy(v[:], src[:Size])
	return v
}

// LoadHalves fills the low 128 bits from src[0:16] and the high 128 bits from
// src[hi:hi+16] (vinserti128 of two unaligned loads).
func LoadHalves(src []byte, hi int) Vec {
	var v Vec
	copy(v[:Half], src[:Half])
	copy(v[Half:], src[hi:hi+Half])
	return v
}

// Store writes all 32 bytes of v to dst (vmovdqu).
func (v Vec) Store(dst []byte) {
	copy(dst[:Size], v[:])
}

// StoreHalves writes the low 128 bits to dst[0:16] and then the high 128
// bits to dst[hi:hi+16]; with hi < 16 the high half overwrites the top of the
// low one.
func (v Vec) StoreHalves(dst []byte, hi int) {
	copy(dst[:Half], v[:Half])
	copy(dst[hi:hi+Half], v[Half:])
}

// Set8 builds a register from bytes given lowest first (_mm256_setr_epi8).
func Set8(b [Size]int8) Vec {
	var v Vec
	for i, x := range b {
		v[i] = byte(x)
	}
	return v
}

// Broadcast8 sets every byte to b (vpbroadcastb).
func Broadcast8(b byte) Vec {
	var v Vec
	for i := range v {
		v[i] = b
	}
	return v
}

// Broadcast32 sets every 32-bit lane to d (vpbroadcastd).
func Broadcast32(d uint32) Vec {
	var v Vec
	for i := 0; i < Size; i += 4 {
		binary.LittleEndian.PutUint32(v[i:], d)
	}
	return v
}

func (v Vec) u32(i int) uint32 { return binary.LittleEndian.Uint32(v[i*4:]) }

func (v *Vec) setU32(i int, x uint32) { binary.LittleEndian.PutUint32(v[i*4:], x) }

// And is vpand.
func (v Vec) And(w Vec) Vec {
	for i := range v {
		v[i] &= w[i]
	}
	return v
}

// Or is vpor.
func (v Vec) Or(w Vec) Vec {
	for i := range v {
		v[i] |= w[i]
	}
	return v
}

// Add8 adds bytes with wrap-around (vpaddb).
func (v Vec) Add8(w Vec) Vec {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

// Sub8 subtracts bytes with wrap-around (vpsubb).
func (v Vec) Sub8(w Vec) Vec {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

// SubSatU8 subtracts unsigned bytes, clamping at zero (vpsubusb).
func (v Vec) SubSatU8(w Vec) Vec {
	for i := range v {
		if v[i] > w[i] {
			v[i] -= w[i]
		} else {
			v[i] = 0
		}
	}
	return v
}

// GreaterI8 compares signed bytes, yielding 0xFF where v > w (vpcmpgtb).
func (v Vec) GreaterI8(w Vec) Vec {
	for i := range v {
		if int8(v[i]) > int8(w[i]) {
			v[i] = 0xFF
		} else {
			v[i] = 0
		}
	}
	return v
}

// Equal8 yields 0xFF where bytes are equal (vpcmpeqb).
func (v Vec) Equal8(w Vec) Vec {
	for i := range v {
		if v[i] == w[i] {
			v[i] = 0xFF
		} else {
			v[i] = 0
		}
	}
	return v
}

// Shuffle8 looks up each byte of idx in v (vpshufb). The lookup stays within
// the 128-bit half of the destination byte: only the low four bits of an index
// are used, and an index with the top bit set yields zero.
func (v Vec) Shuffle8(idx Vec) Vec {
	var out Vec
	for i := range out {
		if idx[i]&0x80 != 0 {
			continue
		}
		half := i &^ 15
		out[i] = v[half+int(idx[i]&0x0F)]
	}
	return out
}

// ShiftLeft32 shifts each 32-bit lane left by n bits (vpslld).
func (v Vec) ShiftLeft32(n uint) Vec {
	var out Vec
	for i := 0; i < 8; i++ {
		out.setU32(i, v.u32(i)<<n)
	}
	return out
}

// ShiftRight32 shifts each 32-bit lane right by n bits (vpsrld).
func (v Vec) ShiftRight32(n uint) Vec {
	var out Vec
	for i := 0; i < 8; i++ {
		out.setU32(i, v.u32(i)>>n)
	}
	return out
}

// TestZero reports whether v AND w is all zeros (vptest, ZF).
func TestZero(v, w Vec) bool {
	var acc byte
	for i := range v {
		acc |= v[i] & w[i]
	}
	return acc == 0
}
