// SPDX-License-Identifier: EPL-2.0

package qpsk

import (
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/ik5/audboot/errs"
	"github.com/ik5/audboot/utils"
)

// Config describes the waveform.
type Config struct {
	SampleRate int
	SymbolRate int
	// CarrierFrequency in Hz. Zero uses SymbolRate, one carrier cycle per
	// symbol.
	CarrierFrequency int
	Constellation    Constellation
}

// Signal is mono 16-bit PCM.
type Signal []int16

// Modulator turns symbols into PCM. It is immutable after construction and
// safe for concurrent use.
type Modulator struct {
	cfg Config
	sps int
	// carrier holds one full carrier period per data symbol, indexed by
	// absolute sample index modulo len(carrier[s]).
	carrier [4][]int16
}

// NewModulator validates cfg and precomputes the carrier table.
func NewModulator(cfg Config) (*Modulator, error) {
	if cfg.SampleRate <= 0 {
		return nil, errs.NewConfigError("sample rate", cfg.SampleRate, "must be positive")
	}
	if cfg.SymbolRate <= 0 {
		return nil, errs.NewConfigError("symbol rate", cfg.SymbolRate, "must be positive")
	}
	if cfg.SampleRate%cfg.SymbolRate != 0 {
		return nil, errs.NewConfigError("symbol rate", cfg.SymbolRate,
			"sample rate %d is not an integer multiple", cfg.SampleRate)
	}
	if cfg.CarrierFrequency == 0 {
		cfg.CarrierFrequency = cfg.SymbolRate
	}
	if cfg.CarrierFrequency < 0 || 2*cfg.CarrierFrequency >= cfg.SampleRate {
		return nil, errs.NewConfigError("carrier frequency", cfg.CarrierFrequency,
			"must be positive and below %d Hz", cfg.SampleRate/2)
	}
	if cfg.Constellation != Gray && cfg.Constellation != Natural {
		return nil, errs.NewConfigError("constellation", cfg.Constellation, "unknown")
	}

	m := &Modulator{cfg: cfg, sps: cfg.SampleRate / cfg.SymbolRate}
	m.buildCarrier()
	return m, nil
}

func (m *Modulator) buildCarrier() {
	sr := int64(m.cfg.SampleRate)
	f := int64(m.cfg.CarrierFrequency)
	period := sr / gcd(f, sr)

	for s := range m.carrier {
		m.carrier[s] = make([]int16, period)
	}

	for j := range period {
		phi := 2 * math.Pi * float64((f*j)%sr) / float64(sr)
		cos, sin := math.Cos(phi), math.Sin(phi)

		for s := range 4 {
			var x float64
			switch m.cfg.Constellation {
			case Gray:
				i, q := -1.0, -1.0
				if s&2 != 0 {
					i = 1
				}
				if s&1 != 0 {
					q = 1
				}
				x = (i*cos - q*sin) / math.Sqrt2
			case Natural:
				x = math.Sin(phi + float64(s)*math.Pi/2)
			}
			m.carrier[s][j] = utils.Quantize16(x)
		}
	}
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Config returns the effective configuration, with the carrier resolved.
func (m *Modulator) Config() Config { return m.cfg }

func (m *Modulator) SampleRate() int { return m.cfg.SampleRate }

// SamplesPerSymbol is SampleRate/SymbolRate.
func (m *Modulator) SamplesPerSymbol() int { return m.sps }

// SampleCount is the number of samples n symbols occupy.
func (m *Modulator) SampleCount(n int) int { return n * m.sps }

// Duration is the air time of n symbols.
func (m *Modulator) Duration(n int) time.Duration {
	return time.Duration(int64(n) * int64(m.sps) * int64(time.Second) / int64(m.cfg.SampleRate))
}

// AppendSymbol appends the samples of s, which is the index-th symbol of the
// stream, to dst.
func (m *Modulator) AppendSymbol(dst Signal, index int, s Symbol) Signal {
	if !s.Valid() {
		panic(fmt.Sprintf("qpsk: %v: %d", ErrInvalidSymbol, uint8(s)))
	}

	if s == Blank {
		for range m.sps {
			dst = append(dst, 0)
		}
		return dst
	}

	table := m.carrier[s]
	n := index * m.sps
	for k := range m.sps {
		dst = append(dst, table[(n+k)%len(table)])
	}
	return dst
}

// Modulate collects the whole signal for symbols.
func (m *Modulator) Modulate(symbols iter.Seq[Symbol]) Signal {
	var out Signal
	index := 0
	for s := range symbols {
		out = m.AppendSymbol(out, index, s)
		index++
	}
	return out
}
