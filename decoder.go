package rapidb64

import (
	"errors"
	"io"
)

// Decoder reads Base64 text from an underlying reader and returns the decoded
// bytes. The text is decoded in runs of whole quartets as it arrives, with the
// same rules as Decode: no whitespace, and padding only in the final quartet.
//
// Error offsets are counted from the start of the stream. A stream whose
// length is not a multiple of 4 is only detected at its end, after every
// complete quartet before it has been returned. On an invalid character the
// rest of the stream is read first, so that a bad total length is reported
// instead, as Decode does.
type Decoder struct {
	r  io.Reader
	c  codec
	rb readBuffer

	offset int // characters decoded so far
	padAt  int // offset of the first '=' seen, or -1

	scratch []byte
	out     []byte // decoded bytes not yet returned
	err     error  // sticky, returned once out is drained
}

type DecoderOption func(d *Decoder)

func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	return newDecoder(r, defaultCodec(), opts)
}

func newDecoder(r io.Reader, c codec, opts []DecoderOption) *Decoder {
	d := &Decoder{r: r, c: c, padAt: -1}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithBufferSize sets the initial size of the read buffer. The buffer grows
// when a reader hands over less than a quartet at a time.
func WithBufferSize(size int) DecoderOption {
	return func(d *Decoder) {
		d.rb = readBuffer{buf: make([]byte, max(size, 4))}
	}
}

// Reset discards the Decoder's state and makes it read from r, keeping its
// buffers.
func (d *Decoder) Reset(r io.Reader) {
	d.r = r
	d.rb.reset()
	d.offset = 0
	d.padAt = -1
	d.out = nil
	d.err = nil
}

// Read implements io.Reader.
func (d *Decoder) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	for len(d.out) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		d.err = d.step()
	}
	n := copy(p, d.out)
	d.out = d.out[n:]
	return n, nil
}

// step decodes every whole quartet currently available and reports the
// error, if any, that ends the stream.
func (d *Decoder) step() error {
	readErr := d.rb.fill(d.r, 4)

	w := d.rb.window()
	if len(w) > 0 && d.padAt >= 0 {
		return d.fail(&InvalidCharacterError{Offset: d.padAt, Char: padChar}, len(w), readErr)
	}

	if n := len(w) / 4 * 4; n > 0 {
		chunk := w[:n]
		if need := DecodedLen(n); cap(d.scratch) < need {
			d.scratch = make([]byte, need)
		}
		m, err := decodeIntoWith(d.c, d.scratch[:cap(d.scratch)], chunk)
		if err != nil {
			var ice *InvalidCharacterError
			if errors.As(err, &ice) {
				ice.Offset += d.offset
			}
			return d.fail(err, len(w), readErr)
		}
		switch {
		case chunk[n-2] == padChar:
			d.padAt = d.offset + n - 2
		case chunk[n-1] == padChar:
			d.padAt = d.offset + n - 1
		}
		d.out = d.scratch[:m]
		d.offset += n
		d.rb.advance(n)
	}

	switch {
	case readErr == nil:
		return nil
	case errors.Is(readErr, io.EOF):
		if rest := len(d.rb.window()); rest > 0 {
			return InputLengthError(d.offset + rest)
		}
		return io.EOF
	default:
		return ioError(readErr)
	}
}

// fail drains the reader after a data error, buffered being the characters
// read but not yet decoded, and reports a bad total length ahead of err.
func (d *Decoder) fail(err error, buffered int, readErr error) error {
	if readErr != nil && !errors.Is(readErr, io.EOF) {
		return ioError(readErr)
	}
	rest, cerr := io.Copy(io.Discard, d.r)
	if cerr != nil {
		return ioError(cerr)
	}
	if total := d.offset + buffered + int(rest); total%4 != 0 {
		return InputLengthError(total)
	}
	return err
}
