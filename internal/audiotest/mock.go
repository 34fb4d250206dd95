// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests: seeded
// payloads that stand in for firmware images and synthetic mono sources
// for the channel simulator.
package audiotest

import (
	"fmt"
	"io"
	"math"
	"math/rand/v2"

	"github.com/marcinbor85/gohex"
)

// Payload returns n pseudo-random bytes. The same seed always yields the
// same bytes on every platform.
func Payload(n int, seed int64) []byte {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x9E3779B97F4A7C15))
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(rng.UintN(256))
	}
	return out
}

// GoldenPayload is the 10,000 byte image the end-to-end tests encode.
func GoldenPayload() []byte {
	return Payload(10000, 420)
}

// WriteIntelHex writes data at base as Intel-HEX with 16-byte records, the
// layout firmware toolchains emit.
func WriteIntelHex(w io.Writer, base uint32, data []byte) error {
	mem := gohex.NewMemory()
	if len(data) > 0 {
		if err := mem.AddBinary(base, data); err != nil {
			return fmt.Errorf("add image at 0x%08X: %w", base, err)
		}
	}
	if err := mem.DumpIntelHex(w, 16); err != nil {
		return fmt.Errorf("write Intel-HEX: %w", err)
	}
	return nil
}

// MockSource is a mono float source driven by a waveform function. It
// implements audio.Source without importing it.
type MockSource struct {
	sampleRate int
	total      int
	generated  int
	waveform   func(n int) float32
}

func NewMockSource(sampleRate, total int, waveform func(n int) float32) *MockSource {
	return &MockSource{sampleRate: sampleRate, total: total, waveform: waveform}
}

// NewSineSource generates a unit amplitude sine at frequency Hz.
func NewSineSource(sampleRate, total int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, total, func(n int) float32 {
		return float32(math.Sin(2 * math.Pi * frequency * float64(n) / float64(sampleRate)))
	})
}

// NewConstantSource generates a DC level.
func NewConstantSource(sampleRate, total int, value float32) *MockSource {
	return NewMockSource(sampleRate, total, func(int) float32 { return value })
}

// NewRampSource generates n/total, which makes interpolation errors easy to
// spot.
func NewRampSource(sampleRate, total int) *MockSource {
	return NewMockSource(sampleRate, total, func(n int) float32 {
		return float32(n) / float32(total)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return 1 }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.generated >= m.total {
		return 0, io.EOF
	}

	n := min(len(dst), m.total-m.generated)
	for i := range n {
		dst[i] = m.waveform(m.generated + i)
	}
	m.generated += n

	if m.generated >= m.total {
		return n, io.EOF
	}
	return n, nil
}
