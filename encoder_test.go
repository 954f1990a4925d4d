package rapidb64

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoderSimple(t *testing.T) {
	for _, tc := range vectors {
		t.Run(tc.name, func(t *testing.T) {
			encoded := new(bytes.Buffer)
			w := NewEncoder(encoded)
			_, err := io.Copy(w, bytes.NewReader([]byte(tc.decoded)))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			require.Equal(t, tc.encoded, encoded.String())
		})
	}
}

func TestEncoderOddWrites(t *testing.T) {
	raw := randomBytes(t, 100_000)
	want := base64.StdEncoding.EncodeToString(raw)

	for _, size := range []int{1, 2, 3, 4, 5, 7, 31, 1000, encodeChunk + 1} {
		encoded := new(bytes.Buffer)
		w := NewEncoder(encoded)
		for p := raw; len(p) > 0; {
			n := min(size, len(p))
			written, err := w.Write(p[:n])
			require.NoError(t, err)
			require.Equal(t, n, written)
			p = p[n:]
		}
		require.NoError(t, w.Close())
		require.Equal(t, want, encoded.String(), "write size %d", size)
	}
}

func TestEncoderClosed(t *testing.T) {
	w := NewEncoder(io.Discard)
	require.NoError(t, w.Close())

	_, err := w.Write([]byte("x"))
	require.Error(t, err)
	require.Error(t, w.Close())

	encoded := new(bytes.Buffer)
	w.Reset(encoded)
	_, err = w.Write([]byte("foob"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, "Zm9vYg==", encoded.String())
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errDiskFull
}

func TestEncoderWriterError(t *testing.T) {
	w := NewEncoder(failingWriter{})
	_, err := w.Write([]byte("foobar"))
	require.ErrorIs(t, err, ErrUnknown)
	require.ErrorIs(t, err, errDiskFull)
}

// flakyWriter accepts ok writes and fails the next one.
type flakyWriter struct {
	bytes.Buffer
	ok int
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	if w.ok == 0 {
		return 0, errDiskFull
	}
	w.ok--
	return w.Buffer.Write(p)
}

func TestEncoderWriteErrorCount(t *testing.T) {
	raw := randomBytes(t, 3*encodeChunk+10)

	out := &flakyWriter{ok: 2}
	w := NewEncoder(out)
	n, err := w.Write(raw)
	require.ErrorIs(t, err, errDiskFull)
	require.Equal(t, 2*encodeChunk, n)

	// Resume where the failed Write stopped.
	out.ok = 10
	m, err := w.Write(raw[n:])
	require.NoError(t, err)
	require.Equal(t, len(raw)-n, m)
	require.NoError(t, w.Close())
	require.Equal(t, base64.StdEncoding.EncodeToString(raw), out.String())
}

func TestEncoderPendingKeptOnError(t *testing.T) {
	out := &flakyWriter{}
	w := NewEncoder(out)
	n, err := w.Write([]byte("fo"))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = w.Write([]byte("obar"))
	require.ErrorIs(t, err, errDiskFull)
	require.Zero(t, n)

	out.ok = 10
	n, err = w.Write([]byte("obar"))
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.NoError(t, w.Close())
	require.Equal(t, "Zm9vYmFy", out.String())
}

func BenchmarkEncoder(b *testing.B) {
	raw := randomBytes(b, 1024*1024)
	r := bytes.NewReader(raw)
	enc := NewEncoder(io.Discard)

	b.SetBytes(int64(len(raw)))
	for b.Loop() {
		_, err := io.Copy(enc, r)
		require.NoError(b, err)
		require.NoError(b, enc.Close())
		_, err = r.Seek(0, io.SeekStart)
		require.NoError(b, err)
		enc.Reset(io.Discard)
	}
}
