package bench

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/mnightingale/rapidb64"
	"github.com/pkg/errors"
	asmbase64 "github.com/segmentio/asm/base64"
)

// Result is the throughput of one implementation for one operation.
type Result struct {
	Name    string
	Elapsed time.Duration
	MBps    float64
}

type candidate struct {
	name   string
	encode func(dst, src []byte) (int, error)
	decode func(dst, src []byte) (int, error)
}

func candidates(kernels []rapidb64.Kernel) ([]candidate, error) {
	var cs []candidate
	for _, k := range kernels {
		c, err := rapidb64.NewCodec(k)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		cs = append(cs, candidate{
			name:   "rapidb64 " + c.Name(),
			encode: c.EncodeInto,
			decode: c.DecodeInto,
		})
	}
	cs = append(cs, candidate{
		name: "encoding/base64",
		encode: func(dst, src []byte) (int, error) {
			base64.StdEncoding.Encode(dst, src)
			return base64.StdEncoding.EncodedLen(len(src)), nil
		},
		decode: base64.StdEncoding.Decode,
	}, candidate{
		name: "segmentio/asm",
		encode: func(dst, src []byte) (int, error) {
			asmbase64.StdEncoding.Encode(dst, src)
			return asmbase64.StdEncoding.EncodedLen(len(src)), nil
		},
		decode: asmbase64.StdEncoding.Decode,
	})
	return cs, nil
}

// Input returns n bytes counting up from zero and wrapping.
func Input(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func measure(name string, iterations, size int, fn func() error) (Result, error) {
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := fn(); err != nil {
			return Result{}, errors.Wrapf(err, "%s failed", name)
		}
	}
	elapsed := time.Since(start)

	r := Result{Name: name, Elapsed: elapsed}
	if secs := elapsed.Seconds(); secs > 0 {
		r.MBps = float64(size*iterations) / float64(1<<20) / secs
	}
	return r, nil
}

// Run times encode and decode of src on every kernel and on the
// encoding/base64 and segmentio/asm baselines.
// Each kernel's output is checked against encoding/base64 first.
func Run(src []byte, iterations int, kernels []rapidb64.Kernel) (encode, decode []Result, err error) {
	cs, err := candidates(kernels)
	if err != nil {
		return nil, nil, err
	}

	want := []byte(base64.StdEncoding.EncodeToString(src))
	encoded := make([]byte, rapidb64.EncodedLen(len(src)))
	decoded := make([]byte, rapidb64.DecodedLen(len(want)))

	for _, c := range cs {
		n, err := c.encode(encoded, src)
		if err != nil || !bytes.Equal(want, encoded[:n]) {
			return nil, nil, errors.Errorf("%s: encoded output differs from encoding/base64 (%v)", c.name, err)
		}
		n, err = c.decode(decoded, want)
		if err != nil || !bytes.Equal(src, decoded[:n]) {
			return nil, nil, errors.Errorf("%s: decoded output differs from input (%v)", c.name, err)
		}

		r, err := measure(c.name, iterations, len(src), func() error {
			_, err := c.encode(encoded, src)
			return err
		})
		if err != nil {
			return nil, nil, err
		}
		encode = append(encode, r)

		r, err = measure(c.name, iterations, len(src), func() error {
			_, err := c.decode(decoded, want)
			return err
		})
		if err != nil {
			return nil, nil, err
		}
		decode = append(decode, r)
	}
	return encode, decode, nil
}

// Report prints results as a two column name | MB/s table.
func Report(w io.Writer, title string, results []Result) {
	fmt.Fprintf(w, "# %s\n", title)
	fmt.Fprintf(w, "%-20s | %-15s\n", "name", "MB/s")
	for _, r := range results {
		fmt.Fprintf(w, "%-20s | %-15.2f\n", r.Name, r.MBps)
	}
}
