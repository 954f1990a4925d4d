package bench

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mnightingale/rapidb64"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ks := []rapidb64.Kernel{rapidb64.KernelGeneric, rapidb64.KernelTable}
	encode, decode, err := Run(Input(1000), 3, ks)
	require.NoError(t, err)

	names := []string{"rapidb64 generic", "rapidb64 table", "encoding/base64", "segmentio/asm"}
	require.Len(t, encode, len(names))
	require.Len(t, decode, len(names))
	for i, name := range names {
		require.Equal(t, name, encode[i].Name)
		require.Equal(t, name, decode[i].Name)
		require.GreaterOrEqual(t, encode[i].MBps, 0.0)
	}
}

func TestRunUnsupportedKernel(t *testing.T) {
	_, _, err := Run(Input(10), 1, []rapidb64.Kernel{rapidb64.Kernel(99)})
	require.Error(t, err)
}

func TestReport(t *testing.T) {
	out := new(bytes.Buffer)
	Report(out, "Encode", []Result{{Name: "rapidb64 avx2", Elapsed: time.Second, MBps: 1234.5}})

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Equal(t, []string{
		"# Encode",
		"name                 | MB/s           ",
		"rapidb64 avx2        | 1234.50        ",
	}, lines)
}

func TestKernelsOption(t *testing.T) {
	c := NewCommand()
	ks, err := c.kernels()
	require.NoError(t, err)
	require.NotEmpty(t, ks)

	c.Kernels = []string{"table", "generic"}
	ks, err = c.kernels()
	require.NoError(t, err)
	require.Equal(t, []rapidb64.Kernel{rapidb64.KernelTable, rapidb64.KernelGeneric}, ks)

	c.Kernels = []string{"neon"}
	_, err = c.kernels()
	require.Error(t, err)
}
