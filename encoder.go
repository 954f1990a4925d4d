package rapidb64

import (
	"errors"
	"io"
	"sync"
)

// encodeChunk is the amount of input encoded per write to the underlying
// writer. It is a multiple of 3 so no chunk but the last needs padding.
const encodeChunk = 3 * 8 * 1024

type Encoder struct {
	w io.Writer
	c codec

	pending [2]byte // input bytes short of a full triplet
	nPend   int

	buf []byte

	writeMu sync.Mutex
}

// NewEncoder returns a new [Encoder].
// Writes to the returned writer are Base64 encoded and written to w.
//
// It is the caller's responsibility to call Close on the [Encoder] when done;
// the padded final quartet is only written then.
func NewEncoder(w io.Writer) *Encoder {
	return newEncoder(w, defaultCodec())
}

func newEncoder(w io.Writer, c codec) *Encoder {
	e := &Encoder{c: c}
	e.Reset(w)
	return e
}

// Reset discards the [Encoder] e's state and makes it equivalent to the
// result of its original state from [NewEncoder], but writing to w instead.
// This permits reusing a [Encoder] rather than allocating a new one.
func (e *Encoder) Reset(w io.Writer) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	e.w = w
	e.nPend = 0
}

var errWriterNil = errors.New("[rapidb64] writer is nil")

// Write writes the Base64 encoded form of p to the underlying [io.Writer].
// Up to two trailing bytes are held back until more input or Close arrives.
// On a write error n counts the bytes of p whose encoding was written, and a
// later Write can resume from p[n:].
func (e *Encoder) Write(p []byte) (n int, err error) {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return 0, errWriterNil
	}

	// Complete a triplet left over from the previous Write.
	if e.nPend > 0 {
		take := 3 - e.nPend
		if len(p) < take {
			e.nPend += copy(e.pending[e.nPend:], p)
			return len(p), nil
		}
		var t [3]byte
		copy(t[:], e.pending[:e.nPend])
		copy(t[e.nPend:], p[:take])
		if err := e.flush(t[:]); err != nil {
			return 0, err
		}
		e.nPend = 0
		n += take
		p = p[take:]
	}

	for len(p) >= 3 {
		chunk := min(len(p)/3*3, encodeChunk)
		if err := e.flush(p[:chunk]); err != nil {
			return n, err
		}
		n += chunk
		p = p[chunk:]
	}

	e.nPend += copy(e.pending[e.nPend:], p)
	return n + len(p), nil
}

// Close writes the padded encoding of any held back input.
// It is an error to call Write after calling Close.
func (e *Encoder) Close() error {
	e.writeMu.Lock()
	defer e.writeMu.Unlock()

	if e.w == nil {
		return errWriterNil
	}
	defer func() { e.w = nil }()

	if e.nPend == 0 {
		return nil
	}
	rest := e.pending[:e.nPend]
	e.nPend = 0
	return e.flush(rest)
}

func (e *Encoder) flush(src []byte) error {
	if grow := EncodedLen(encodeChunk) - len(e.buf); grow > 0 {
		e.buf = append(e.buf, make([]byte, grow)...)
	}

	n, err := encodeIntoWith(e.c, e.buf, src)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(e.buf[:n]); err != nil {
		return ioError(err)
	}
	return nil
}
