package verify

import (
	"bytes"
	"encoding/base64"
	"os"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/mnightingale/rapidb64"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// dumpWindow is how many bytes around a mismatch are dumped at debug level.
const dumpWindow = 32

// Bytes round-trips data through every codec and compares the encoding with
// encoding/base64.
func Bytes(name string, data []byte, codecs []*rapidb64.Codec) error {
	want := base64.StdEncoding.EncodeToString(data)

	var errs error
	for _, c := range codecs {
		got := c.Encode(data)
		if got != want {
			at := firstDiff([]byte(want), []byte(got))
			dumpMismatch(name, c.Name(), at, []byte(want), []byte(got))
			errs = multierror.Append(errs, errors.Errorf("%s: %s encoding differs from encoding/base64 at offset %d", name, c.Name(), at))
			continue
		}

		decoded, err := c.Decode([]byte(got))
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "%s: %s could not decode its own output", name, c.Name()))
			continue
		}
		if !bytes.Equal(data, decoded) {
			at := firstDiff(data, decoded)
			dumpMismatch(name, c.Name(), at, data, decoded)
			errs = multierror.Append(errs, errors.Errorf("%s: %s round trip differs at offset %d", name, c.Name(), at))
		}
	}
	return errs
}

// Files verifies every file, at most jobs at a time, and returns all
// failures together.
func Files(files []string, jobs int, codecs []*rapidb64.Codec) error {
	var (
		mu   sync.Mutex
		errs error
		g    errgroup.Group
	)
	g.SetLimit(max(jobs, 1))

	for _, file := range files {
		g.Go(func() error {
			err := File(file, codecs)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, err)
				mu.Unlock()
				return nil
			}
			log.WithField("file", file).Info("OK")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return errs
}

// File reads one file and verifies it.
func File(file string, codecs []*rapidb64.Codec) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.WithStack(err)
	}
	log.WithField("file", file).Debugf("Verifying %d bytes", len(data))
	return Bytes(file, data, codecs)
}

func firstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

func dumpMismatch(name, kernel string, at int, want, got []byte) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	window := func(b []byte) []byte {
		lo := max(at-dumpWindow/2, 0)
		hi := min(at+dumpWindow/2, len(b))
		if lo > hi {
			return nil
		}
		return b[lo:hi]
	}
	log.WithFields(log.Fields{
		"file":   name,
		"kernel": kernel,
		"offset": at,
	}).Debugf("Mismatch\nwant:\n%sgot:\n%s", spew.Sdump(window(want)), spew.Sdump(window(got)))
}
