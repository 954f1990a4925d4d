package rapidb64

import (
	"os"
	"strconv"
)

// useAVX2 is decided once at start-up by the platform files and only read
// afterwards. Only a build carrying the AVX2 kernel ever sets it.
var useAVX2 bool

// noSIMDEnv reports whether RAPIDB64_NO_SIMD asks for the generic codec
// regardless of what the cpu supports.
func noSIMDEnv() bool {
	val := os.Getenv("RAPIDB64_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// defaultCodec picks the codec for one call.
func defaultCodec() codec {
	if useAVX2 {
		return avx2Codec()
	}
	return genericCodec{}
}

// EncodeKernel returns the name of the implementation being used for encode operations
func EncodeKernel() string {
	return defaultCodec().name()
}

// DecodeKernel returns the name of the implementation being used for decode operations
func DecodeKernel() string {
	return defaultCodec().name()
}
