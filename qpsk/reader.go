// SPDX-License-Identifier: EPL-2.0

package qpsk

import (
	"io"
	"iter"
)

// Reader streams the samples of a symbol sequence. It buffers one symbol.
type Reader struct {
	m      *Modulator
	next   func() (Symbol, bool)
	stop   func()
	index  int
	buf    Signal
	off    int
	done   bool
	closed bool
}

// Stream returns a Reader over symbols. Close it when done to release the
// underlying iterator.
func (m *Modulator) Stream(symbols iter.Seq[Symbol]) *Reader {
	next, stop := iter.Pull(symbols)
	return &Reader{
		m:    m,
		next: next,
		stop: stop,
		buf:  make(Signal, 0, m.sps),
	}
}

func (r *Reader) SampleRate() int { return r.m.cfg.SampleRate }

// Symbols is the number of symbols consumed so far.
func (r *Reader) Symbols() int { return r.index }

// ReadSamples fills dst and returns the count written. It returns io.EOF
// with the final samples or on any call after the stream ended.
func (r *Reader) ReadSamples(dst []int16) (int, error) {
	if r.closed {
		return 0, ErrReaderClosed
	}

	written := 0
	for written < len(dst) {
		if r.off == len(r.buf) {
			if !r.fill() {
				return written, io.EOF
			}
		}
		n := copy(dst[written:], r.buf[r.off:])
		r.off += n
		written += n
	}
	return written, nil
}

func (r *Reader) fill() bool {
	if r.done {
		return false
	}
	s, ok := r.next()
	if !ok {
		r.done = true
		return false
	}
	r.buf = r.m.AppendSymbol(r.buf[:0], r.index, s)
	r.off = 0
	r.index++
	return true
}

// Close stops the symbol iterator.
func (r *Reader) Close() error {
	if !r.closed {
		r.closed = true
		r.stop()
	}
	return nil
}
