// SPDX-License-Identifier: EPL-2.0

package audio

// Gain scales every sample of src.
type Gain struct {
	Source
	gain float32
}

func NewGain(src Source, gain float32) *Gain {
	return &Gain{Source: src, gain: gain}
}

func (g *Gain) ReadSamples(dst []float32) (int, error) {
	n, err := g.Source.ReadSamples(dst)
	for i := range dst[:n] {
		dst[i] *= g.gain
	}
	return n, err
}
