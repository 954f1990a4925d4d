package flags

import (
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/require"
)

type benchOptions struct {
	Bytes   int      `long:"bytes"  yaml:"bytes"`
	Kernels []string `long:"kernel" yaml:"kernels"`
}

func (*benchOptions) Execute([]string) error { return nil }

func TestParse(t *testing.T) {
	opts := &benchOptions{Bytes: 100}
	parser := flags.NewNamedParser("rapidb64", flags.HelpFlag)
	_, err := parser.AddCommand("bench", "", "", opts)
	require.NoError(t, err)

	config := `
bench:
  bytes: 4096
---
bench:
  bytes: 8192
  kernels: [generic, table]
`
	require.NoError(t, NewYamlParser(parser).Parse(strings.NewReader(config)))
	require.Equal(t, 8192, opts.Bytes)
	require.Equal(t, []string{"generic", "table"}, opts.Kernels)
}

func TestParseUnknownCommand(t *testing.T) {
	parser := flags.NewNamedParser("rapidb64", flags.HelpFlag)
	err := NewYamlParser(parser).Parse(strings.NewReader("nope:\n  x: 1\n"))

	var ferr *flags.Error
	require.ErrorAs(t, err, &ferr)
	require.Equal(t, flags.ErrUnknownGroup, ferr.Type)
}
