//go:build goexperiment.simd && amd64

package rapidb64

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireAVX2(t testing.TB) {
	if !hasAVX2() {
		t.Skip("cpu lacks AVX2")
	}
}

func TestAVX2MatchesModel(t *testing.T) {
	requireAVX2(t)

	raw := randomBytes(t, 2000)
	for n := 0; n <= len(raw); n += 13 {
		want := make([]byte, EncodedLen(n))
		got := make([]byte, EncodedLen(n))
		wSrc, wDst := avx2Model{}.encodeBlocks(want, raw[:n])
		gSrc, gDst := avx2Kernel{}.encodeBlocks(got, raw[:n])
		require.Equal(t, wSrc, gSrc, "#%d", n)
		require.Equal(t, wDst, gDst, "#%d", n)
		require.Equal(t, want[:wDst], got[:gDst], "#%d", n)

		enc := []byte(base64.StdEncoding.EncodeToString(raw[:n]))
		want = make([]byte, DecodedLen(len(enc)))
		got = make([]byte, DecodedLen(len(enc)))
		wSrc, wDst = avx2Model{}.decodeBlocks(want, enc)
		gSrc, gDst = avx2Kernel{}.decodeBlocks(got, enc)
		require.Equal(t, wSrc, gSrc, "#%d", n)
		require.Equal(t, want[:wDst], got[:gDst], "#%d", n)
	}
}

func TestAVX2StopsAtInvalidBlock(t *testing.T) {
	requireAVX2(t)

	enc := []byte(base64.StdEncoding.EncodeToString(randomBytes(t, 600)))
	for _, pos := range []int{0, 31, 32, 100, 250, 700} {
		src := bytes.Clone(enc)
		src[pos] = '.'

		dst := make([]byte, DecodedLen(len(src)))
		nSrc, _ := avx2Kernel{}.decodeBlocks(dst, src)
		mSrc, _ := avx2Model{}.decodeBlocks(dst, src)
		require.Equal(t, mSrc, nSrc, "#%d", pos)
		require.LessOrEqual(t, nSrc, pos, "#%d", pos)
		require.Greater(t, nSrc+blockChars, pos, "#%d", pos)
	}
}

func TestAVX2Dispatch(t *testing.T) {
	requireAVX2(t)
	if noSIMDEnv() {
		t.Skip("RAPIDB64_NO_SIMD is set")
	}
	require.True(t, useAVX2)
	require.Equal(t, "avx2", EncodeKernel())
}
