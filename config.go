// SPDX-License-Identifier: EPL-2.0

package audboot

import (
	"time"

	"github.com/ik5/audboot/errs"
	"github.com/ik5/audboot/flashspec"
	"github.com/ik5/audboot/frame"
	"github.com/ik5/audboot/log"
	"github.com/ik5/audboot/qpsk"
)

// DefaultFillByte is the value of erased flash.
const DefaultFillByte = 0xFF

// Config is the complete encoder configuration.
type Config struct {
	SampleRate       int
	SymbolRate       int
	CarrierFrequency int
	Constellation    qpsk.Constellation

	// BlockSize is the padding granularity of the whole image.
	BlockSize int
	FillByte  byte
	FlashSpec flashspec.Table

	// StartAddress is the flash offset of the first byte of the image.
	StartAddress int
	Warmup       time.Duration
	PacketSize   int
	// PacketPreamble repeats resync and alignment before every packet.
	PacketPreamble bool
}

func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		SymbolRate: 6000,
		BlockSize:  1024,
		FillByte:   DefaultFillByte,
		FlashSpec: flashspec.Table{
			{PageSize: 1024, WriteLatency: 25 * time.Millisecond},
		},
		Warmup:     time.Second,
		PacketSize: 256,
	}
}

// Validate returns the first configuration error, or nil.
func (c Config) Validate() error {
	_, _, err := c.build(log.NewNoopLogger())
	return err
}

func (c Config) build(logger log.Logger) (*qpsk.Modulator, *frame.Encoder, error) {
	if c.BlockSize <= 0 {
		return nil, nil, errs.NewConfigError("block size", c.BlockSize, "must be positive")
	}
	if len(c.FlashSpec) == 0 {
		return nil, nil, errs.NewConfigError("flash spec", "(empty)", "at least one entry required")
	}

	mod, err := qpsk.NewModulator(qpsk.Config{
		SampleRate:       c.SampleRate,
		SymbolRate:       c.SymbolRate,
		CarrierFrequency: c.CarrierFrequency,
		Constellation:    c.Constellation,
	})
	if err != nil {
		return nil, nil, err
	}

	enc, err := frame.NewEncoder(frame.Config{
		SymbolRate:     c.SymbolRate,
		PacketSize:     c.PacketSize,
		StartAddress:   c.StartAddress,
		Warmup:         c.Warmup,
		FillByte:       c.FillByte,
		PacketPreamble: c.PacketPreamble,
		Logger:         logger,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := enc.CheckGeometry(c.FlashSpec); err != nil {
		return nil, nil, err
	}

	return mod, enc, nil
}
