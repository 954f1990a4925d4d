package rapidb64

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, raw []byte) {
	t.Helper()

	w := new(bytes.Buffer)
	enc := NewEncoder(w)
	_, err := io.Copy(enc, bytes.NewReader(raw))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	dec := NewDecoder(bytes.NewReader(w.Bytes()))
	decoded := new(bytes.Buffer)
	n, err := io.Copy(decoded, dec)
	require.NoError(t, err)
	require.Equal(t, int64(len(raw)), n)
	require.True(t, bytes.Equal(raw, decoded.Bytes()))
}

func TestEncodeDecodeRoundTrip1MB(t *testing.T) {
	roundTrip(t, randomBytes(t, 1024*1024))
}

func TestEncodeDecodeRoundTripGeneric(t *testing.T) {
	old := useAVX2
	useAVX2 = false
	defer func() { useAVX2 = old }()

	roundTrip(t, randomBytes(t, 1024*1024+1))
}

func TestEncodeDecodeRoundTripAVX2(t *testing.T) {
	if !hasAVX2() {
		t.Skip("no AVX2 kernel in this build or cpu")
	}
	old := useAVX2
	useAVX2 = true
	defer func() { useAVX2 = old }()

	roundTrip(t, randomBytes(t, 1024*1024+2))
}
