package rapidb64

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoSIMDEnv(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"1":     true,
		"true":  true,
		"yes":   true,
	}
	for val, want := range cases {
		t.Setenv("RAPIDB64_NO_SIMD", val)
		require.Equal(t, want, noSIMDEnv(), "RAPIDB64_NO_SIMD=%q", val)
	}
}

func TestDispatch(t *testing.T) {
	old := useAVX2
	defer func() { useAVX2 = old }()

	useAVX2 = false
	require.Equal(t, "generic", EncodeKernel())
	require.Equal(t, "generic", DecodeKernel())
	generic := Encode(randomBytes(t, 333))

	if !hasAVX2() {
		return
	}
	useAVX2 = true
	require.Equal(t, "avx2", EncodeKernel())
	require.Equal(t, "avx2", DecodeKernel())
	require.Equal(t, generic, Encode(randomBytes(t, 333)))

	decoded, err := DecodeString(generic)
	require.NoError(t, err)
	require.Equal(t, randomBytes(t, 333), decoded)
}

func TestDispatchFollowsCPU(t *testing.T) {
	if noSIMDEnv() {
		require.False(t, useAVX2)
		return
	}
	require.Equal(t, hasAVX2(), useAVX2)
}
