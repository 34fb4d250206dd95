// SPDX-License-Identifier: EPL-2.0

package audboot

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ik5/audboot/chunk"
	"github.com/ik5/audboot/errs"
	"github.com/ik5/audboot/formats/wav"
	"github.com/ik5/audboot/frame"
	"github.com/ik5/audboot/log"
	"github.com/ik5/audboot/qpsk"
)

// Encode turns an image into the audio signal the bootloader receives.
func Encode(data []byte, cfg Config, opts ...Option) (qpsk.Signal, error) {
	o := newOptions(opts)
	return encode(data, cfg, o)
}

func encode(data []byte, cfg Config, o *options) (qpsk.Signal, error) {
	p, err := plan(data, cfg, o)
	if err != nil {
		return nil, err
	}

	signal := make(qpsk.Signal, 0, p.mod.SampleCount(p.symbols))
	index := 0
	for s := range p.enc.Encode(p.pages) {
		signal = p.mod.AppendSymbol(signal, index, s)
		index++
	}

	p.report(o.logger, len(data), cfg)
	return signal, nil
}

// transmission is a fully validated run: the pages to send and the exact
// length of the symbol stream they produce.
type transmission struct {
	mod     *qpsk.Modulator
	enc     *frame.Encoder
	padded  int
	pages   iter.Seq[chunk.Page]
	count   int
	symbols int
}

func plan(data []byte, cfg Config, o *options) (*transmission, error) {
	mod, enc, err := cfg.build(o.logger)
	if err != nil {
		return nil, err
	}

	padded, err := chunk.Pad(data, cfg.BlockSize, cfg.FillByte)
	if err != nil {
		return nil, err
	}
	pages, err := chunk.Pages(padded, cfg.FlashSpec, cfg.StartAddress)
	if err != nil {
		return nil, err
	}

	count := 0
	for range pages {
		count++
	}

	symbols := enc.SymbolCount(pages)
	if symbols > wav.MaxSamples/mod.SamplesPerSymbol() {
		return nil, errs.NewConfigError("signal length", symbols,
			"symbols exceed the %d samples a WAV file can hold", wav.MaxSamples)
	}

	return &transmission{
		mod:     mod,
		enc:     enc,
		padded:  len(padded),
		pages:   pages,
		count:   count,
		symbols: symbols,
	}, nil
}

func (p *transmission) report(logger log.Logger, payload int, cfg Config) {
	logger.Info("encoded image",
		log.Int("payload", payload),
		log.Int("padded", p.padded),
		log.Hex("start", cfg.StartAddress),
		log.Int("pages", p.count),
		log.Int("symbols", p.symbols),
		log.Int("samples", p.mod.SampleCount(p.symbols)),
		log.Duration("duration", p.mod.Duration(p.symbols)),
	)
}

// Load reads an image with the loader registered for format.
func Load(r io.Reader, format string, opts ...Option) ([]byte, error) {
	return load(r, format, newOptions(opts), DefaultFillByte)
}

func load(r io.Reader, format string, o *options, fill byte) ([]byte, error) {
	registry := o.registry
	if registry == nil {
		registry = NewRegistry(fill, o.logger)
	}

	loader, ok := registry.Get(format)
	if !ok {
		return nil, errs.NewConfigError("input format", format,
			"want one of %s", strings.Join(registry.Formats(), ", "))
	}

	data, err := loader.Load(r)
	if err != nil {
		return nil, fmt.Errorf("load %s image: %w", format, err)
	}

	o.logger.Debug("loaded image", log.String("format", format), log.Int("size", len(data)))
	return data, nil
}

// Run loads an image from r, encodes it and writes a WAV file to w. The
// signal is streamed page by page; every configuration and input error is
// reported before the first byte reaches w.
func Run(r io.Reader, w io.Writer, format string, cfg Config, opts ...Option) error {
	o := newOptions(opts)

	// Fail on configuration before consuming the input.
	if _, _, err := cfg.build(o.logger); err != nil {
		return err
	}

	data, err := load(r, format, o, cfg.FillByte)
	if err != nil {
		return err
	}

	p, err := plan(data, cfg, o)
	if err != nil {
		return err
	}

	samples := p.mod.Stream(p.enc.Encode(p.pages))
	defer samples.Close()

	if err := wav.WriteWAV16Stream(w, cfg.SampleRate, p.mod.SampleCount(p.symbols), samples); err != nil {
		return fmt.Errorf("write WAV: %w", err)
	}

	p.report(o.logger, len(data), cfg)
	return nil
}
