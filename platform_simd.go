//go:build goexperiment.simd && amd64

package rapidb64

import (
	"golang.org/x/sys/cpu"
)

func init() {
	useAVX2 = hasAVX2() && !noSIMDEnv()
}

// hasAVX2 reports whether the AVX2 kernel can run here. It is compiled in
// with GOEXPERIMENT=simd; the cpu decides the rest.
func hasAVX2() bool {
	return cpu.X86.HasAVX2
}

func avx2Codec() codec {
	return vectorCodec{k: avx2Kernel{}}
}
