package util

import (
	"github.com/mnightingale/rapidb64"
	"github.com/mnightingale/rapidb64/internal/args"
	"github.com/pkg/errors"
)

// SelectCodec returns the codec named by a --kernel option. "auto" honours
// the general --no-simd switch.
func SelectCodec(name string) (*rapidb64.Codec, error) {
	if name == "" {
		name = rapidb64.KernelAuto.String()
	}
	k, err := rapidb64.ParseKernel(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if k == rapidb64.KernelAuto && args.General.NoSIMD {
		k = rapidb64.KernelGeneric
	}
	c, err := rapidb64.NewCodec(k)
	if err != nil {
		return nil, errors.Wrapf(err, "could not select kernel %q", name)
	}
	return c, nil
}
