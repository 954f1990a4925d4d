package decode

import (
	"io"

	"github.com/mnightingale/rapidb64"
	"github.com/mnightingale/rapidb64/internal/logging"
	"github.com/mnightingale/rapidb64/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command decodes a file or stdin.
type Command struct {
	Input      string `short:"i" long:"input"       yaml:"input"       default:"-"     description:"File to decode, - for stdin"`
	Output     string `short:"o" long:"output"      yaml:"output"      default:"-"     description:"File to write, - for stdout"`
	Kernel     string `short:"k" long:"kernel"      yaml:"kernel"      default:"auto"  description:"Kernel to use: auto, generic, table or avx2"`
	BufferSize int    `short:"b" long:"buffer-size" yaml:"buffer-size" default:"32768" description:"Initial read buffer size in bytes"`
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()

	n, err := c.Run()
	if err != nil {
		return err
	}
	log.WithField("input", c.Input).Infof("Decoded %d bytes", n)
	return nil
}

// Run copies Input to Output through a rapidb64 Decoder and returns the
// number of bytes written.
func (c *Command) Run() (int64, error) {
	codec, err := util.SelectCodec(c.Kernel)
	if err != nil {
		return 0, err
	}
	log.Debugf("Decoding with %s", codec.Name())

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

	dec := codec.NewDecoder(in, rapidb64.WithBufferSize(c.BufferSize))
	n, err := io.Copy(out, dec)
	if err != nil {
		return n, errors.Wrapf(err, "could not decode %s", c.Input)
	}
	return n, nil
}

func closeOrLog(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Errorf("Could not close %s: %v", name, err)
	}
}
