// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math/rand/v2"
)

// Noise adds uniform noise in [-amplitude, amplitude] to src.
type Noise struct {
	Source
	amplitude float32
	rng       *rand.Rand
}

// NewNoise seeds a PCG generator with seed, so the same seed gives the same
// noise.
func NewNoise(src Source, amplitude float32, seed uint64) (*Noise, error) {
	if amplitude < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmplitude, amplitude)
	}
	return &Noise{
		Source:    src,
		amplitude: amplitude,
		rng:       rand.New(rand.NewPCG(seed, seed^0xDA3E39CB94B95BDB)),
	}, nil
}

func (z *Noise) ReadSamples(dst []float32) (int, error) {
	n, err := z.Source.ReadSamples(dst)
	for i := range dst[:n] {
		dst[i] += z.amplitude * (2*z.rng.Float32() - 1)
	}
	return n, err
}
