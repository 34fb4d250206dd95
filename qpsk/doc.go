// SPDX-License-Identifier: EPL-2.0

// Package qpsk synthesises a QPSK audio waveform from a symbol stream.
//
// Each Symbol carries two bits and selects one of four carrier phases spaced
// 90° apart. The reserved Blank symbol produces silence of the same length.
// Every symbol occupies SampleRate/SymbolRate samples; rates that do not
// divide evenly are rejected.
//
//	mod, err := qpsk.NewModulator(qpsk.Config{SampleRate: 48000, SymbolRate: 6000})
//	signal := mod.Modulate(symbols) // symbols is an iter.Seq[qpsk.Symbol]
//
// The carrier phase is derived from the absolute sample index with integer
// arithmetic and read from a table computed once per modulator, so the same
// symbols and configuration always give byte-identical samples.
//
// For large images use Stream, which pulls symbols lazily and fills caller
// buffers like an audio source:
//
//	r := mod.Stream(symbols)
//	defer r.Close()
//	buf := make([]int16, 4096)
//	for {
//	    n, err := r.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	}
package qpsk
