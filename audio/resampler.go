// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audboot/utils"
)

// Resampler streams src at a different rate using cubic interpolation.
type Resampler struct {
	src  Source
	rate int
	// step is the number of source samples per output sample.
	step float64

	// window holds x[b-1], x[b], x[b+1], x[b+2] around the current base
	// index b. Past either edge the nearest real sample is repeated and
	// real is false.
	window [4]float32
	real   [4]bool
	pos    float64
	primed bool

	buf    []float32
	bufLen int
	bufOff int
	srcEOF bool
}

// NewResampler converts src to dstRate.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d Hz to %d Hz", ErrInvalidRatio, src.SampleRate(), dstRate)
	}
	return newResampler(src, dstRate, float64(src.SampleRate())/float64(dstRate)), nil
}

// NewDriftResampler plays src back ratio times slower and keeps reporting
// src's rate. A ratio of 1.02 yields 2% more samples.
func NewDriftResampler(src Source, ratio float64) (*Resampler, error) {
	if !(ratio > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}
	return newResampler(src, src.SampleRate(), 1/ratio), nil
}

func newResampler(src Source, rate int, step float64) *Resampler {
	size := src.BufSize()
	if size <= 0 {
		size = defaultBufSize
	}
	return &Resampler{src: src, rate: rate, step: step, buf: make([]float32, size)}
}

func (r *Resampler) SampleRate() int { return r.rate }
func (r *Resampler) Channels() int   { return 1 }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// next returns the following source sample, or false once src is drained.
func (r *Resampler) next() (float32, bool, error) {
	for r.bufOff == r.bufLen {
		if r.srcEOF {
			return 0, false, nil
		}
		n, err := r.src.ReadSamples(r.buf)
		r.bufLen, r.bufOff = n, 0
		if err == io.EOF {
			r.srcEOF = true
		} else if err != nil {
			return 0, false, fmt.Errorf("%w", err)
		}
	}

	v := r.buf[r.bufOff]
	r.bufOff++
	return v, true, nil
}

func (r *Resampler) prime() (bool, error) {
	r.primed = true

	first, ok, err := r.next()
	if err != nil || !ok {
		return false, err
	}
	r.window[0], r.window[1] = first, first
	r.real[1] = true

	for i := 2; i < 4; i++ {
		if err := r.fill(i); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (r *Resampler) fill(i int) error {
	v, ok, err := r.next()
	if err != nil {
		return err
	}
	if ok {
		r.window[i], r.real[i] = v, true
	} else {
		r.window[i], r.real[i] = r.window[i-1], false
	}
	return nil
}

func (r *Resampler) advance() error {
	copy(r.window[:3], r.window[1:])
	copy(r.real[:3], r.real[1:])
	return r.fill(3)
}

// ReadSamples produces samples at SampleRate.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if !r.primed {
		ok, err := r.prime()
		if err != nil {
			return 0, err
		}
		if !ok {
			return 0, io.EOF
		}
	}

	written := 0
	for written < len(dst) {
		for r.pos >= 1 {
			r.pos--
			if err := r.advance(); err != nil {
				return written, err
			}
		}
		if !r.real[1] {
			return written, io.EOF
		}

		w := r.window
		dst[written] = utils.CubicInterpolate(w[0], w[1], w[2], w[3], float32(r.pos))
		written++
		r.pos += r.step
	}

	return written, nil
}
