// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-stream primitives behind the channel
// simulator.
//
// Everything here implements Source, a pull-based mono float32 stream in
// [-1, 1], so stages chain like readers:
//
//	src := audio.NewSignalSource(signal, 48000)
//	drift, _ := audio.NewDriftResampler(src, 1.02)
//	quiet := audio.NewGain(drift, 0.1)
//	noisy, _ := audio.NewNoise(quiet, 0.01, 1)
//	pcm, err := audio.Collect16(noisy, 4096)
//
// # Resampling
//
// Resampler uses cubic interpolation. NewResampler converts to a new sample
// rate. NewDriftResampler stretches the signal by a clock drift ratio while
// reporting the original rate, which is what a receiver with a mistuned
// sample clock sees.
//
// # Impairments
//
// Gain scales samples. Noise adds seeded uniform noise, so an impaired file
// is reproducible from its seed. Collect16 clamps and requantises to 16-bit
// PCM.
package audio
