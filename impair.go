// SPDX-License-Identifier: EPL-2.0

package audboot

import (
	"github.com/ik5/audboot/audio"
	"github.com/ik5/audboot/qpsk"
)

// Impairment describes a simulated audio channel.
type Impairment struct {
	// Rate is the receiver's sample rate in Hz. Zero keeps the source rate.
	Rate int
	// Drift is the receiver to transmitter clock ratio. Zero means 1.
	Drift float64
	Gain  float64
	// Noise is the peak amplitude of uniform noise, relative to full scale.
	Noise float64
	Seed  uint64
}

// DefaultImpairment leaves the signal untouched.
func DefaultImpairment() Impairment {
	return Impairment{Drift: 1, Gain: 1}
}

// Impair passes signal through the channel imp describes. The result is at
// sampleRate unless imp.Rate converts it.
func Impair(signal qpsk.Signal, sampleRate int, imp Impairment) (qpsk.Signal, error) {
	out, _, err := ImpairSource(audio.NewSignalSource(signal, sampleRate), imp)
	return out, err
}

// ImpairSource drains src through the channel imp describes and returns the
// impaired samples with their sample rate.
func ImpairSource(src audio.Source, imp Impairment) (qpsk.Signal, int, error) {
	defer src.Close()

	if imp.Rate != 0 && imp.Rate != src.SampleRate() {
		r, err := audio.NewResampler(src, imp.Rate)
		if err != nil {
			return nil, 0, err
		}
		src = r
	}

	drift := imp.Drift
	if drift == 0 {
		drift = 1
	}
	src, err := audio.NewDriftResampler(src, drift)
	if err != nil {
		return nil, 0, err
	}
	src = audio.NewGain(src, float32(imp.Gain))
	if imp.Noise != 0 {
		if src, err = audio.NewNoise(src, float32(imp.Noise), imp.Seed); err != nil {
			return nil, 0, err
		}
	}

	pcm, err := audio.Collect16(src, src.BufSize())
	if err != nil {
		return nil, 0, err
	}
	return pcm, src.SampleRate(), nil
}
