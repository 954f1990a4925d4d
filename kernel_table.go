package rapidb64

// tableKernel converts whole blocks through the 16-bit pair tables: two
// characters per encode lookup, one 12-bit value per decode lookup. It needs
// no special instructions and serves as the reference for adding kernels.
type tableKernel struct{}

func (tableKernel) name() string {
	return "table"
}

func (tableKernel) encodeBlocks(dst, src []byte) (nSrc, nDst int) {
	maybeInitPairs()

	for len(src)-nSrc >= blockBytes {
		in := src[nSrc : nSrc+blockBytes : nSrc+blockBytes]
		out := dst[nDst : nDst+blockChars : nDst+blockChars]
		for i, o := 0, 0; i < blockBytes; i, o = i+3, o+4 {
			v := uint32(in[i])<<16 | uint32(in[i+1])<<8 | uint32(in[i+2])
			hi, lo := encodePair[v>>12], encodePair[v&0xFFF]
			out[o], out[o+1], out[o+2], out[o+3] = hi[0], hi[1], lo[0], lo[1]
		}
		nSrc += blockBytes
		nDst += blockChars
	}
	return nSrc, nDst
}

func (tableKernel) decodeBlocks(dst, src []byte) (nSrc, nDst int) {
	maybeInitPairs()

	// Strictly more than a block must remain so the last quartet is never
	// part of one.
	for len(src)-nSrc > blockChars {
		in := src[nSrc : nSrc+blockChars : nSrc+blockChars]
		var words [blockChars / 4]uint32
		var acc uint16
		for q := range words {
			i := q * 4
			hi := decodePair[uint16(in[i])<<8|uint16(in[i+1])]
			lo := decodePair[uint16(in[i+2])<<8|uint16(in[i+3])]
			acc |= hi | lo
			words[q] = uint32(hi)<<12 | uint32(lo)
		}
		if acc > 0x0FFF {
			break
		}

		out := dst[nDst : nDst+blockBytes : nDst+blockBytes]
		for q, v := range words {
			out[q*3] = byte(v >> 16)
			out[q*3+1] = byte(v >> 8)
			out[q*3+2] = byte(v)
		}
		nSrc += blockChars
		nDst += blockBytes
	}
	return nSrc, nDst
}
