package bench

import (
	"fmt"
	"os"

	"github.com/mnightingale/rapidb64"
	"github.com/mnightingale/rapidb64/internal/args"
	"github.com/mnightingale/rapidb64/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command measures throughput per kernel.
type Command struct {
	Bytes      int      `short:"b" long:"bytes"      yaml:"bytes"      default:"100" description:"Number of bytes for input"`
	Iterations int      `short:"i" long:"iterations" yaml:"iterations" default:"100" description:"Number of iterations"`
	Kernels    []string `short:"k" long:"kernel"     yaml:"kernels"                  description:"Kernel to measure; repeat for several. Defaults to every kernel this cpu supports"`
}

func NewCommand() *Command {
	return &Command{
		Bytes:      100,
		Iterations: 100,
	}
}

func (c *Command) kernels() ([]rapidb64.Kernel, error) {
	if len(c.Kernels) == 0 {
		if args.General.NoSIMD {
			return []rapidb64.Kernel{rapidb64.KernelGeneric, rapidb64.KernelTable}, nil
		}
		return rapidb64.Kernels(), nil
	}

	ks := make([]rapidb64.Kernel, 0, len(c.Kernels))
	for _, name := range c.Kernels {
		k, err := rapidb64.ParseKernel(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		ks = append(ks, k)
	}
	return ks, nil
}

func (c *Command) Execute(_ []string) error {
	logging.SetupLogging()

	if c.Bytes < 0 || c.Iterations <= 0 {
		return errors.Errorf("invalid benchmark size: %d bytes x %d iterations", c.Bytes, c.Iterations)
	}
	ks, err := c.kernels()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"bytes":      c.Bytes,
		"iterations": c.Iterations,
		"kernels":    ks,
	}).Debug("Starting benchmark")

	encode, decode, err := Run(Input(c.Bytes), c.Iterations, ks)
	if err != nil {
		return err
	}

	fmt.Printf("## Bytes per iteration: %d\n", c.Bytes)
	fmt.Printf("## Iterations: %d\n", c.Iterations)
	Report(os.Stdout, "Encode", encode)
	Report(os.Stdout, "Decode", decode)
	return nil
}
