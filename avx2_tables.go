package rapidb64

// Constants of the AVX2 block algorithm (Muła, Klomp and Lemire,
// fastavxbase64.c), with the multiplies of the reshuffle steps replaced by
// 32-bit shifts. Byte tables are given lowest lane first and repeat per
// 128-bit half, as vpshufb only looks within its own half.

// encShuffle spreads each triplet b0 b1 b2 over a 32-bit lane as b1 b0 b2 b1.
// Both halves index from their own load: bytes 0..11 of the block in the low
// half and bytes 12..23 in the high half.
var encShuffle = [32]int8{
	1, 0, 2, 1, 4, 3, 5, 4, 7, 6, 8, 7, 10, 9, 11, 10,
	1, 0, 2, 1, 4, 3, 5, 4, 7, 6, 8, 7, 10, 9, 11, 10,
}

// With a lane holding b1 b0 b2 b1 as the 32-bit value x, the four 6-bit
// groups sit at bits 10, 4, 22 and 16 of x. Each one is moved to the bottom
// of its own byte.
const (
	encMaskA = 0x0000003f // x >> 10
	encMaskB = 0x00003f00 // x << 4
	encMaskC = 0x003f0000 // x >> 6
	encMaskD = 0x3f000000 // x << 8
)

// encOffsets is added per range: A-Z, a-z, 0-9 (ten entries), '+', '/'.
var encOffsets = [32]int8{
	65, 71, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -19, -16, 0, 0,
	65, 71, -4, -4, -4, -4, -4, -4, -4, -4, -4, -4, -19, -16, 0, 0,
}

// Nibble classification by @aqrit: for every alphabet byte the two lookups
// share no bit, for every other byte they do.
var (
	decLutLo = [32]int8{
		0x15, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x13, 0x1A, 0x1B, 0x1B, 0x1B, 0x1A,
		0x15, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x13, 0x1A, 0x1B, 0x1B, 0x1B, 0x1A,
	}
	decLutHi = [32]int8{
		0x10, 0x10, 0x01, 0x02, 0x04, 0x08, 0x04, 0x08, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10,
		0x10, 0x10, 0x01, 0x02, 0x04, 0x08, 0x04, 0x08, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x10,
	}
)

//	#  From       To        Add  Characters
//	1  [43]       [62]      +19  +
//	2  [47]       [63]      +16  /
//	3  [48..57]   [52..61]   +4  0..9
//	4  [65..90]   [0..25]   -65  A..Z
//	5  [97..122]  [26..51]  -71  a..z
var decLutRoll = [32]int8{
	0, 16, 19, 4, -65, -65, -71, -71, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 16, 19, 4, -65, -65, -71, -71, 0, 0, 0, 0, 0, 0, 0, 0,
}

// A lane of decoded values a b c d (lowest byte first) is merged into the
// 24-bit value a<<18 | b<<12 | c<<6 | d by masking each byte and shifting it
// into place.
const (
	decMaskA = 0x000000ff // << 18
	decMaskB = 0x0000ff00 // << 4
	decMaskC = 0x00ff0000 // >> 10
	// d is x >> 24, no mask needed
)

// decPack writes the three bytes of every merged lane most significant first
// and zeroes the last four bytes of each half.
var decPack = [32]int8{
	2, 1, 0, 6, 5, 4, 10, 9, 8, 14, 13, 12, -1, -1, -1, -1,
	2, 1, 0, 6, 5, 4, 10, 9, 8, 14, 13, 12, -1, -1, -1, -1,
}

// encodeWindow is the input one encode step reads: the two 16-byte loads at
// offsets 0 and 12.
const encodeWindow = blockChars - 4

// decodeLookahead is the input the decode loop needs in front of it: one block
// plus enough characters that the final, possibly padded, quartet is never
// part of a block. It also leaves room for the 28 bytes each block store
// writes, of which the last four are overwritten by whatever follows.
const decodeLookahead = 45
