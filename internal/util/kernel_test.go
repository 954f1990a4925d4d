package util

import (
	"testing"

	"github.com/mnightingale/rapidb64"
	"github.com/mnightingale/rapidb64/internal/args"
	"github.com/stretchr/testify/require"
)

func TestSelectCodec(t *testing.T) {
	c, err := SelectCodec("table")
	require.NoError(t, err)
	require.Equal(t, rapidb64.KernelTable, c.Kernel())

	c, err = SelectCodec("")
	require.NoError(t, err)
	require.Equal(t, rapidb64.KernelAuto, c.Kernel())

	_, err = SelectCodec("sse3")
	require.Error(t, err)
}

func TestSelectCodecNoSIMD(t *testing.T) {
	old := args.General.NoSIMD
	defer func() { args.General.NoSIMD = old }()

	args.General.NoSIMD = true
	c, err := SelectCodec("auto")
	require.NoError(t, err)
	require.Equal(t, rapidb64.KernelGeneric, c.Kernel())
	require.Equal(t, "generic", c.Name())
}
