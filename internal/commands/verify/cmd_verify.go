package verify

import (
	"github.com/mnightingale/rapidb64"
	"github.com/mnightingale/rapidb64/internal/args"
	"github.com/mnightingale/rapidb64/internal/logging"
	"github.com/pkg/errors"
)

// Command checks that every kernel agrees with encoding/base64 on the given
// files.
type Command struct {
	Jobs int `short:"j" long:"jobs" yaml:"jobs" default:"4" description:"Number of files verified concurrently"`

	Positional struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `positional-args:"yes"`
}

func NewCommand() *Command {
	return &Command{Jobs: 4}
}

// codecs returns one Codec per kernel this cpu supports.
func codecs() ([]*rapidb64.Codec, error) {
	ks := rapidb64.Kernels()
	if args.General.NoSIMD {
		ks = []rapidb64.Kernel{rapidb64.KernelGeneric, rapidb64.KernelTable}
	}

	cs := make([]*rapidb64.Codec, 0, len(ks))
	for _, k := range ks {
		c, err := rapidb64.NewCodec(k)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		cs = append(cs, c)
	}
	return cs, nil
}

func (c *Command) Execute(_ []string) error {
	logging.SetupLogging()

	cs, err := codecs()
	if err != nil {
		return err
	}
	return Files(c.Positional.Files, c.Jobs, cs)
}
