package encode

import (
	"io"

	"github.com/mnightingale/rapidb64/internal/logging"
	"github.com/mnightingale/rapidb64/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes a file or stdin.
type Command struct {
	Input  string `short:"i" long:"input"  yaml:"input"  default:"-"    description:"File to encode, - for stdin"`
	Output string `short:"o" long:"output" yaml:"output" default:"-"    description:"File to write, - for stdout"`
	Kernel string `short:"k" long:"kernel" yaml:"kernel" default:"auto" description:"Kernel to use: auto, generic, table or avx2"`
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	n, err := c.Run()
	if err != nil {
		return err
	}
	log.WithField("input", c.Input).Infof("Encoded %d bytes", n)
	return nil
}

// Run copies Input to Output through a rapidb64 Encoder and returns the
// number of bytes read.
func (c *Command) Run() (int64, error) {
	codec, err := util.SelectCodec(c.Kernel)
	if err != nil {
		return 0, err
	}
	log.Debugf("Encoding with %s", codec.Name())

	in, err := util.OpenInput(c.Input)
	if err != nil {
		return 0, err
	}
	defer closeOrLog(c.Input, in)

	out, err := util.OpenOutput(c.Output)
	if err != nil {
		return 0, err
	}
	defer closeOrLog(c.Output, out)

	enc := codec.NewEncoder(out)
	n, err := io.Copy(enc, in)
	if err != nil {
		return n, errors.Wrapf(err, "could not encode %s", c.Input)
	}
	if err := enc.Close(); err != nil {
		return n, errors.Wrapf(err, "could not flush %s", c.Output)
	}
	return n, nil
}

func closeOrLog(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Errorf("Could not close %s: %v", name, err)
	}
}
