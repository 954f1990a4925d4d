package rapidb64

// encodeGeneric is the portable Base64 encoder. dst must hold at least
// EncodedLen(len(src)) bytes; it returns the number of bytes written.
func encodeGeneric(dst, src []byte) int {
	if len(src) == 0 {
		return 0
	}

	n := len(src) / 3 * 3
	di := 0
	for si := 0; si < n; si += 3 {
		_ = dst[di+3]
		v := uint32(src[si])<<16 | uint32(src[si+1])<<8 | uint32(src[si+2])
		dst[di] = encodeTable[v>>18&0x3F]
		dst[di+1] = encodeTable[v>>12&0x3F]
		dst[di+2] = encodeTable[v>>6&0x3F]
		dst[di+3] = encodeTable[v&0x3F]
		di += 4
	}

	// Short final triplet, zero-extended.
	switch len(src) - n {
	case 1:
		_ = dst[di+3]
		v := uint32(src[n]) << 16
		dst[di] = encodeTable[v>>18&0x3F]
		dst[di+1] = encodeTable[v>>12&0x3F]
		dst[di+2] = padChar
		dst[di+3] = padChar
		di += 4
	case 2:
		_ = dst[di+3]
		v := uint32(src[n])<<16 | uint32(src[n+1])<<8
		dst[di] = encodeTable[v>>18&0x3F]
		dst[di+1] = encodeTable[v>>12&0x3F]
		dst[di+2] = encodeTable[v>>6&0x3F]
		dst[di+3] = padChar
		di += 4
	}

	return di
}
