//go:build goexperiment.simd && amd64

package rapidb64

import "simd/archsimd"

// avx2Kernel converts eight triplets or eight quartets per 256-bit register.
type avx2Kernel struct{}

func (avx2Kernel) name() string {
	return "avx2"
}

func (avx2Kernel) encodeBlocks(dst, src []byte) (nSrc, nDst int) {
	shuffle := archsimd.LoadInt8x32(&encShuffle)
	offsets := archsimd.LoadInt8x32(&encOffsets)
	maskA := archsimd.BroadcastUint32x8(encMaskA)
	maskB := archsimd.BroadcastUint32x8(encMaskB)
	maskC := archsimd.BroadcastUint32x8(encMaskC)
	maskD := archsimd.BroadcastUint32x8(encMaskD)
	v51 := archsimd.BroadcastUint8x32(51)
	v25 := archsimd.BroadcastInt8x32(25)

	var in archsimd.Uint8x32
	for len(src)-nSrc >= encodeWindow {
		lo := archsimd.LoadUint8x16Slice(src[nSrc:])
		hi := archsimd.LoadUint8x16Slice(src[nSrc+12:])
		in = in.SetLo(lo).SetHi(hi)

		x := in.PermuteOrZeroGrouped(shuffle).AsUint32x8()
		groups := x.ShiftAllRight(10).And(maskA).
			Or(x.ShiftAllLeft(4).And(maskB)).
			Or(x.ShiftAllRight(6).And(maskC)).
			Or(x.ShiftAllLeft(8).And(maskD)).
			AsUint8x32()

		// Saturating subtract separates digits and '+' '/', the signed
		// compare splits upper from lower case.
		idx := groups.SubSaturated(v51).AsInt8x32()
		lower := groups.AsInt8x32().Greater(v25).ToInt8x32()
		idx = idx.Sub(lower)
		out := groups.AsInt8x32().Add(offsets.PermuteOrZeroGrouped(idx))
		out.AsUint8x32().StoreSlice(dst[nDst:])

		nSrc += blockBytes
		nDst += blockChars
	}
	return nSrc, nDst
}

func (avx2Kernel) decodeBlocks(dst, src []byte) (nSrc, nDst int) {
	lutLo := archsimd.LoadInt8x32(&decLutLo)
	lutHi := archsimd.LoadInt8x32(&decLutHi)
	lutRoll := archsimd.LoadInt8x32(&decLutRoll)
	pack := archsimd.LoadInt8x32(&decPack)
	maskA := archsimd.BroadcastUint32x8(decMaskA)
	maskB := archsimd.BroadcastUint32x8(decMaskB)
	maskC := archsimd.BroadcastUint32x8(decMaskC)
	v2F := archsimd.BroadcastUint8x32(0x2f)
	var zero archsimd.Int8x32

	for len(src)-nSrc >= decodeLookahead {
		str := archsimd.LoadUint8x32Slice(src[nSrc:])

		hiNibbles := str.AsUint32x8().ShiftAllRight(4).AsUint8x32().And(v2F).AsInt8x32()
		loNibbles := str.And(v2F).AsInt8x32()
		lo := lutLo.PermuteOrZeroGrouped(loNibbles)
		hi := lutHi.PermuteOrZeroGrouped(hiNibbles)
		if lo.And(hi).Equal(zero).ToBits() != 1<<32-1 {
			// Let the generic decoder name the byte.
			break
		}

		eq2F := str.Equal(v2F).ToInt8x32()
		roll := lutRoll.PermuteOrZeroGrouped(eq2F.Add(hiNibbles))
		x := str.AsInt8x32().Add(roll).AsUint32x8()

		merged := x.And(maskA).ShiftAllLeft(18).
			Or(x.And(maskB).ShiftAllLeft(4)).
			Or(x.And(maskC).ShiftAllRight(10)).
			Or(x.ShiftAllRight(24))
		out := merged.AsInt8x32().PermuteOrZeroGrouped(pack)

		// Twelve bytes per half; the second store covers the four zeroes the
		// first one leaves.
		out.GetLo().AsUint8x16().StoreSlice(dst[nDst:])
		out.GetHi().AsUint8x16().StoreSlice(dst[nDst+12:])

		nSrc += blockChars
		nDst += blockBytes
	}
	return nSrc, nDst
}
