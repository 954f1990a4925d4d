package rapidb64

import "sync"

// alphabet is the standard Base64 alphabet (RFC 4648 §4).
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const padChar = '='

// badChar marks a byte outside the alphabet. It is larger than any valid
// 6-bit value and than any 24-bit triple, so OR'ing the lookups of a whole
// quartet and comparing once against badChar detects any invalid byte in it.
const badChar uint32 = 0x01FFFFFF

// pairBad marks a character pair holding at least one invalid byte.
// Valid pair values never exceed 0x0FFF.
const pairBad uint16 = 0xFFFF

var (
	// encodeTable maps a 6-bit value to its character.
	encodeTable [64]byte

	// decodeTable maps a byte to its 6-bit value, or badChar.
	decodeTable [256]uint32

	// decodeShift holds decodeTable pre-shifted for each position of a
	// quartet: OR'ing decodeShift[0][a]|...|decodeShift[3][d] yields the
	// 24-bit triple directly.
	decodeShift [4][256]uint32
)

func init() {
	for i := range decodeTable {
		decodeTable[i] = badChar
	}
	for i := 0; i < len(alphabet); i++ {
		encodeTable[i] = alphabet[i]
		decodeTable[alphabet[i]] = uint32(i)
	}

	for c, v := range decodeTable {
		if v == badChar {
			for pos := range decodeShift {
				decodeShift[pos][c] = badChar
			}
			continue
		}
		decodeShift[0][c] = v << 18
		decodeShift[1][c] = v << 12
		decodeShift[2][c] = v << 6
		decodeShift[3][c] = v
	}
}

// The pair tables fold two lookups into one memory access. They are only
// needed by the table kernel and are 136KiB together, so they are built on
// first use, from encodeTable and decodeTable only.
var (
	encodePair [1 << 12][2]byte
	decodePair [1 << 16]uint16
	initPairs  sync.Once
)

func maybeInitPairs() {
	initPairs.Do(func() {
		for v := range encodePair {
			encodePair[v] = [2]byte{encodeTable[v>>6], encodeTable[v&0x3F]}
		}
		for k := range decodePair {
			hi, lo := decodeTable[k>>8], decodeTable[k&0xFF]
			if hi == badChar || lo == badChar {
				decodePair[k] = pairBad
				continue
			}
			decodePair[k] = uint16(hi<<6 | lo)
		}
	})
}
