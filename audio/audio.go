// SPDX-License-Identifier: EPL-2.0

package audio

import "io"

// Source is a mono sample stream.
type Source interface {
	// SampleRate of the stream in Hz.
	SampleRate() int
	// Channels is always 1 for the sources in this module.
	Channels() int
	// ReadSamples fills dst with float32 samples in [-1,1] and returns the
	// count written. io.EOF marks the end, possibly with a final batch.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}
