//go:build !goexperiment.simd || !amd64

package rapidb64

// No vector kernel in this build; everything runs on the generic codec.

func hasAVX2() bool {
	return false
}

// avx2Codec is never reached: useAVX2 stays false and NewCodec checks
// hasAVX2 first.
func avx2Codec() codec {
	return nil
}
