package main

import (
	"fmt"
	"os"
	"path"

	"github.com/jessevdk/go-flags"
	"github.com/mnightingale/rapidb64/internal/args"
	"github.com/mnightingale/rapidb64/internal/commands/bench"
	"github.com/mnightingale/rapidb64/internal/commands/decode"
	"github.com/mnightingale/rapidb64/internal/commands/encode"
	"github.com/mnightingale/rapidb64/internal/commands/verify"
	"github.com/mnightingale/rapidb64/internal/commands/version"
	rbFlags "github.com/mnightingale/rapidb64/internal/flags"
	"github.com/mnightingale/rapidb64/internal/util"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// RapidB64 is the main executable
type RapidB64 struct {
	parser *flags.Parser
}

// NewRapidB64 creates the parser with every command registered.
func NewRapidB64() *RapidB64 {
	executablePath := path.Base(os.Args[0])

	rb := &RapidB64{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	rb.setupGeneral()
	rb.addCommand("version", "Print the version", "Print the application version, kernels in use and exit", &version.Command{})
	rb.addCommand("encode", "Encode to Base64", "Encode a file or stdin to padded standard Base64", &encode.Command{})
	rb.addCommand("decode", "Decode from Base64", "Decode padded standard Base64 from a file or stdin", &decode.Command{})
	rb.addCommand("bench", "Measure throughput", "Measure encode and decode throughput of every kernel against encoding/base64", bench.NewCommand())
	rb.addCommand("verify", "Verify kernels", "Round-trip files through every kernel and compare with encoding/base64", verify.NewCommand())

	return rb
}

// setupGeneral will configure general options
func (rb *RapidB64) setupGeneral() {
	if _, err := rb.parser.AddGroup("General", "General options", &args.General); err != nil {
		util.MustErrorNilOrExit(errors.WithStack(err))
	}
}

func (rb *RapidB64) addCommand(name, short, long string, data interface{}) {
	_, err := rb.parser.AddCommand(name, short, long, data)
	util.MustErrorNilOrExit(err)
}

func main() {
	rb := NewRapidB64()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			})
		}

		args.General.ConfigurationFilePath = file
		return rbFlags.NewYamlParser(rb.parser).ParseFile(file)
	}

	_, err := rb.parser.Parse()
	util.MustErrorNilOrExit(err)
}
