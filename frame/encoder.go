// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"encoding/binary"
	"hash/crc32"
	"iter"
	"time"

	"github.com/ik5/audboot/chunk"
	"github.com/ik5/audboot/errs"
	"github.com/ik5/audboot/flashspec"
	"github.com/ik5/audboot/log"
	"github.com/ik5/audboot/qpsk"
)

const (
	// OutroDuration is the blank appended after the last page.
	OutroDuration = time.Second

	// SymbolsPerByte is the number of dibits a byte expands to.
	SymbolsPerByte = 4

	// CRCSize is the length of the checksum trailing every packet.
	CRCSize = 4
)

var (
	resyncBytes    = []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	alignmentBytes = []byte{0x99, 0x99, 0x99, 0x99, 0xCC, 0xCC, 0xCC, 0xCC}
)

// Config controls framing.
type Config struct {
	SymbolRate int
	PacketSize int
	// StartAddress is where the first page lands in target flash. Pages
	// already carry absolute addresses; it is only logged.
	StartAddress int
	// Warmup is the length of the intro tone.
	Warmup   time.Duration
	FillByte byte
	// PacketPreamble sends resync and alignment before every packet rather
	// than once per page, for receivers that hunt for sync per packet.
	PacketPreamble bool
	Logger         log.Logger
}

// Encoder turns pages into symbols.
type Encoder struct {
	cfg Config
	log log.Logger
}

func NewEncoder(cfg Config) (*Encoder, error) {
	switch {
	case cfg.SymbolRate <= 0:
		return nil, errs.NewConfigError("symbol rate", cfg.SymbolRate, "must be positive")
	case cfg.PacketSize <= 0:
		return nil, errs.NewConfigError("packet size", cfg.PacketSize, "must be positive")
	case cfg.Warmup < 0:
		return nil, errs.NewConfigError("warmup", cfg.Warmup, "must not be negative")
	case cfg.StartAddress < 0:
		return nil, errs.NewConfigError("start address", cfg.StartAddress, "must not be negative")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Encoder{cfg: cfg, log: logger}, nil
}

// CheckGeometry rejects tables whose pages cannot be split into whole
// packets.
func (e *Encoder) CheckGeometry(table flashspec.Table) error {
	for _, entry := range table {
		if entry.PageSize%e.cfg.PacketSize != 0 {
			return errs.NewConfigError("packet size", e.cfg.PacketSize,
				"does not divide page size %d", entry.PageSize)
		}
	}
	return nil
}

// Encode yields the full symbol stream for pages.
func (e *Encoder) Encode(pages iter.Seq[chunk.Page]) iter.Seq[qpsk.Symbol] {
	return func(yield func(qpsk.Symbol) bool) {
		e.log.Debug("framing image",
			log.Hex("start", e.cfg.StartAddress),
			log.Duration("warmup", e.cfg.Warmup),
			log.Int("packet_size", e.cfg.PacketSize),
			log.Bool("packet_preamble", e.cfg.PacketPreamble),
		)
		if !emit(yield, e.intro()) {
			return
		}

		index := 0
		for page := range pages {
			e.log.Debug("framing page",
				log.Int("page", index),
				log.Hex("address", page.Address),
				log.Int("size", len(page.Bytes)),
				log.Duration("latency", page.WriteLatency),
				log.Int("packets", e.packetCount(len(page.Bytes))),
			)
			if !emit(yield, e.encodePage(page)) {
				return
			}
			index++
		}

		emit(yield, e.blank(OutroDuration))
	}
}

// SymbolCount is the number of symbols Encode yields for pages.
func (e *Encoder) SymbolCount(pages iter.Seq[chunk.Page]) int {
	n := e.durationSymbols(e.cfg.Warmup) + e.durationSymbols(OutroDuration)
	preamble := (len(resyncBytes) + len(alignmentBytes)) * SymbolsPerByte
	perPacket := (e.cfg.PacketSize + CRCSize) * SymbolsPerByte
	if e.cfg.PacketPreamble {
		perPacket += preamble
		preamble = 0
	}
	for page := range pages {
		n += preamble
		n += e.packetCount(len(page.Bytes)) * perPacket
		n += e.durationSymbols(page.WriteLatency)
	}
	return n
}

func (e *Encoder) encodePage(page chunk.Page) iter.Seq[qpsk.Symbol] {
	return func(yield func(qpsk.Symbol) bool) {
		if !e.cfg.PacketPreamble && !emit(yield, preamble()) {
			return
		}

		// PacketSize was validated by NewEncoder.
		packets, _ := chunk.Packets(page.Bytes, e.cfg.PacketSize, e.cfg.FillByte)
		for p := range packets {
			if e.cfg.PacketPreamble && !emit(yield, preamble()) {
				return
			}
			if !emit(yield, encodeBlock(p.Bytes)) {
				return
			}
		}

		emit(yield, e.blank(page.WriteLatency))
	}
}

func (e *Encoder) packetCount(n int) int {
	return (n + e.cfg.PacketSize - 1) / e.cfg.PacketSize
}

// durationSymbols rounds d to whole symbols. Whole seconds and the
// remainder are scaled apart so long write times cannot overflow.
func (e *Encoder) durationSymbols(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	rate := int64(e.cfg.SymbolRate)
	second := int64(time.Second)
	whole, frac := int64(d/time.Second), int64(d%time.Second)
	return int(whole*rate + (frac*rate+second/2)/second)
}

func (e *Encoder) intro() iter.Seq[qpsk.Symbol] {
	return repeat(0, e.durationSymbols(e.cfg.Warmup))
}

func (e *Encoder) blank(d time.Duration) iter.Seq[qpsk.Symbol] {
	return repeat(qpsk.Blank, e.durationSymbols(d))
}

func resync() iter.Seq[qpsk.Symbol] { return encodeBytes(resyncBytes) }

func alignment() iter.Seq[qpsk.Symbol] { return encodeBytes(alignmentBytes) }

func preamble() iter.Seq[qpsk.Symbol] {
	return func(yield func(qpsk.Symbol) bool) {
		_ = emit(yield, resync()) && emit(yield, alignment())
	}
}

// encodeBlock yields p followed by its CRC-32, big endian.
func encodeBlock(p []byte) iter.Seq[qpsk.Symbol] {
	var sum [CRCSize]byte
	binary.BigEndian.PutUint32(sum[:], crc32.ChecksumIEEE(p))

	return func(yield func(qpsk.Symbol) bool) {
		_ = emit(yield, encodeBytes(p)) && emit(yield, encodeBytes(sum[:]))
	}
}

func encodeBytes(p []byte) iter.Seq[qpsk.Symbol] {
	return func(yield func(qpsk.Symbol) bool) {
		for _, b := range p {
			if !emit(yield, encodeByte(b)) {
				return
			}
		}
	}
}

func encodeByte(b byte) iter.Seq[qpsk.Symbol] {
	return func(yield func(qpsk.Symbol) bool) {
		for shift := 6; shift >= 0; shift -= 2 {
			if !yield(qpsk.Symbol(b>>shift) & 3) {
				return
			}
		}
	}
}

func repeat(s qpsk.Symbol, n int) iter.Seq[qpsk.Symbol] {
	return func(yield func(qpsk.Symbol) bool) {
		for range n {
			if !yield(s) {
				return
			}
		}
	}
}

// emit forwards seq to yield and reports whether the consumer wants more.
func emit(yield func(qpsk.Symbol) bool, seq iter.Seq[qpsk.Symbol]) bool {
	for s := range seq {
		if !yield(s) {
			return false
		}
	}
	return true
}
