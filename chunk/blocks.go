// SPDX-License-Identifier: EPL-2.0

package chunk

import (
	"bytes"
	"iter"

	"github.com/ik5/audboot/errs"
)

// Block is a fixed-size chunk of payload. The last Padding bytes are fill.
type Block struct {
	Bytes   []byte
	Padding int
}

// Blocks cuts data into size-byte blocks. The tail is padded with fill and a
// padding region always exists: when len(data) is a multiple of size an
// extra block made only of fill is emitted.
func Blocks(data []byte, size int, fill byte) (iter.Seq[Block], error) {
	if size <= 0 {
		return nil, errs.NewConfigError("block size", size, "must be positive")
	}
	return split(data, size, fill, true), nil
}

// Packets cuts a page into size-byte packets, padding only a short final
// packet. A page whose length is a multiple of size yields exactly
// len(data)/size packets.
func Packets(data []byte, size int, fill byte) (iter.Seq[Block], error) {
	if size <= 0 {
		return nil, errs.NewConfigError("packet size", size, "must be positive")
	}
	return split(data, size, fill, false), nil
}

// PaddingLen is the number of fill bytes Blocks appends to n payload bytes.
func PaddingLen(n, size int) int {
	return size - n%size
}

// Pad returns data followed by the padding Blocks would emit.
func Pad(data []byte, size int, fill byte) ([]byte, error) {
	blocks, err := Blocks(data, size, fill)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(data)+PaddingLen(len(data), size))
	for b := range blocks {
		out = append(out, b.Bytes...)
	}
	return out, nil
}

func split(data []byte, size int, fill byte, alwaysPad bool) iter.Seq[Block] {
	return func(yield func(Block) bool) {
		rest := data
		for len(rest) >= size {
			if !yield(Block{Bytes: rest[:size:size]}) {
				return
			}
			rest = rest[size:]
		}

		if len(rest) == 0 && !alwaysPad {
			return
		}

		tail := make([]byte, size)
		n := copy(tail, rest)
		copy(tail[n:], bytes.Repeat([]byte{fill}, size-n))
		yield(Block{Bytes: tail, Padding: size - n})
	}
}
