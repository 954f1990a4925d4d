package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/mnightingale/rapidb64"
	"github.com/stretchr/testify/require"
)

func allCodecs(t *testing.T) []*rapidb64.Codec {
	cs, err := codecs()
	require.NoError(t, err)
	require.NotEmpty(t, cs)
	return cs
}

func TestBytes(t *testing.T) {
	data := make([]byte, 4099)
	for i := range data {
		data[i] = byte(i * 7)
	}
	require.NoError(t, Bytes("inline", data, allCodecs(t)))
	require.NoError(t, Bytes("empty", nil, allCodecs(t)))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for i, size := range []int{0, 1, 2, 3, 100, 1000, 65537} {
		name := filepath.Join(dir, "f"+string(rune('a'+i)))
		data := make([]byte, size)
		for j := range data {
			data[j] = byte(j ^ size)
		}
		require.NoError(t, os.WriteFile(name, data, 0o644))
		files = append(files, name)
	}

	require.NoError(t, Files(files, 3, allCodecs(t)))
}

func TestFilesCollectsEveryFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good")
	require.NoError(t, os.WriteFile(good, []byte("fine"), 0o644))

	files := []string{
		filepath.Join(dir, "missing-1"),
		good,
		filepath.Join(dir, "missing-2"),
	}
	err := Files(files, 2, allCodecs(t))
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
	for _, e := range merr.Errors {
		require.ErrorIs(t, e, os.ErrNotExist)
	}
}

func TestFirstDiff(t *testing.T) {
	require.Equal(t, 2, firstDiff([]byte("abcd"), []byte("abxd")))
	require.Equal(t, 3, firstDiff([]byte("abc"), []byte("abcd")))
	require.Equal(t, 0, firstDiff(nil, []byte("a")))
}
