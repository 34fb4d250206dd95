// SPDX-License-Identifier: EPL-2.0

// Package wav writes and reads the mono 16-bit PCM WAV files the encoder
// produces.
//
// # Writing
//
// WriteWAV16 emits the canonical 44-byte RIFF header followed by little
// endian samples. The output depends only on the sample rate and the
// samples, so the same signal written to a file or to a pipe is byte
// identical:
//
//	err := wav.WriteWAV16(out, 48000, signal)
//
// # Reading
//
// Decoder parses WAV files with github.com/go-audio/wav and exposes them as
// an audio.Source. Only mono 16-bit PCM is accepted; the channel simulator
// needs nothing else. ReadWAV16 returns the raw samples instead.
package wav
