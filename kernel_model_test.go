package rapidb64

import "github.com/mnightingale/rapidb64/internal/ymm"

// avx2Model runs the AVX2 block algorithm on ymm.Vec, one modelled
// instruction per archsimd call in kernel_avx2.go. It lets every cpu test the
// algorithm and is the reference the real kernel is compared against.
type avx2Model struct{}

func (avx2Model) name() string {
	return "avx2-model"
}

func (avx2Model) encodeBlocks(dst, src []byte) (nSrc, nDst int) {
	shuffle := ymm.Set8(encShuffle)
	offsets := ymm.Set8(encOffsets)
	maskA := ymm.Broadcast32(encMaskA)
	maskB := ymm.Broadcast32(encMaskB)
	maskC := ymm.Broadcast32(encMaskC)
	maskD := ymm.Broadcast32(encMaskD)
	v51 := ymm.Broadcast8(51)
	v25 := ymm.Broadcast8(25)

	for len(src)-nSrc >= encodeWindow {
		x := ymm.LoadHalves(src[nSrc:], 12).Shuffle8(shuffle)
		groups := x.ShiftRight32(10).And(maskA).
			Or(x.ShiftLeft32(4).And(maskB)).
			Or(x.ShiftRight32(6).And(maskC)).
			Or(x.ShiftLeft32(8).And(maskD))

		idx := groups.SubSatU8(v51).Sub8(groups.GreaterI8(v25))
		groups.Add8(offsets.Shuffle8(idx)).Store(dst[nDst:])

		nSrc += blockBytes
		nDst += blockChars
	}
	return nSrc, nDst
}

func (avx2Model) decodeBlocks(dst, src []byte) (nSrc, nDst int) {
	lutLo := ymm.Set8(decLutLo)
	lutHi := ymm.Set8(decLutHi)
	lutRoll := ymm.Set8(decLutRoll)
	pack := ymm.Set8(decPack)
	maskA := ymm.Broadcast32(decMaskA)
	maskB := ymm.Broadcast32(decMaskB)
	maskC := ymm.Broadcast32(decMaskC)
	v2F := ymm.Broadcast8(0x2f)

	for len(src)-nSrc >= decodeLookahead {
		str := ymm.Load(src[nSrc:])

		hiNibbles := str.ShiftRight32(4).And(v2F)
		lo := lutLo.Shuffle8(str.And(v2F))
		hi := lutHi.Shuffle8(hiNibbles)
		if !ymm.TestZero(lo, hi) {
			break
		}

		roll := lutRoll.Shuffle8(str.Equal8(v2F).Add8(hiNibbles))
		x := str.Add8(roll)

		merged := x.And(maskA).ShiftLeft32(18).
			Or(x.And(maskB).ShiftLeft32(4)).
			Or(x.And(maskC).ShiftRight32(10)).
			Or(x.ShiftRight32(24))
		merged.Shuffle8(pack).StoreHalves(dst[nDst:], 12)

		nSrc += blockChars
		nDst += blockBytes
	}
	return nSrc, nDst
}
