// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/audboot/utils"
)

const defaultBufSize = 4096

// SignalSource reads an in-memory 16-bit signal.
type SignalSource struct {
	samples    []int16
	sampleRate int
	pos        int
}

func NewSignalSource(samples []int16, sampleRate int) *SignalSource {
	return &SignalSource{samples: samples, sampleRate: sampleRate}
}

func (s *SignalSource) SampleRate() int { return s.sampleRate }
func (s *SignalSource) Channels() int   { return 1 }
func (s *SignalSource) BufSize() int    { return defaultBufSize }
func (s *SignalSource) Close() error    { return nil }

func (s *SignalSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := min(len(dst), len(s.samples)-s.pos)
	for i, v := range s.samples[s.pos : s.pos+n] {
		dst[i] = utils.Int16ToFloat32(v)
	}
	s.pos += n

	if s.pos == len(s.samples) {
		return n, io.EOF
	}
	return n, nil
}
