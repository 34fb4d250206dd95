// SPDX-License-Identifier: EPL-2.0

package chunk

import (
	"iter"
	"time"

	"github.com/ik5/audboot/errs"
	"github.com/ik5/audboot/flashspec"
)

// Page is a slice of payload sized to one flash page of the receiver.
type Page struct {
	// Address is the absolute flash offset of the first byte.
	Address      int
	WriteLatency time.Duration
	Bytes        []byte
}

// geometry walks a flash table page by page. Once every entry is used up
// the last entry repeats forever.
type geometry struct {
	table flashspec.Table
	entry int
	used  int
}

func (g *geometry) next() flashspec.Entry {
	e := g.table[g.entry]
	if !e.Unbounded() && g.entry < len(g.table)-1 {
		g.used++
		if g.used == e.Count {
			g.entry++
			g.used = 0
		}
	}
	return e
}

// skip advances the geometry past offset bytes of already committed flash.
// When offset falls inside a page it returns that page's entry and the
// number of bytes left before the next boundary.
func (g *geometry) skip(offset int) (flashspec.Entry, int) {
	pos := 0
	for pos < offset {
		e := g.next()
		pos += e.PageSize
		if pos > offset {
			return e, pos - offset
		}
	}
	return flashspec.Entry{}, 0
}

// Pages cuts data into flash pages following table. startAddress is the
// number of bytes of flash already written before data; it selects where in
// the geometry the first page lies and offsets Page.Address, but never drops
// payload bytes. A start address inside a page yields a short first page
// that ends on the next boundary.
func Pages(data []byte, table flashspec.Table, startAddress int) (iter.Seq[Page], error) {
	if len(table) == 0 {
		return nil, errs.NewConfigError("flash spec", "(empty)", "at least one entry required")
	}
	for _, e := range table {
		if e.PageSize <= 0 {
			return nil, errs.NewConfigError("page size", e.PageSize, "must be positive")
		}
	}
	if startAddress < 0 {
		return nil, errs.NewConfigError("start address", startAddress, "must not be negative")
	}

	return func(yield func(Page) bool) {
		g := &geometry{table: table}
		partial, lead := g.skip(startAddress)

		rest := data
		addr := startAddress
		for len(rest) > 0 {
			e, size := partial, lead
			if size == 0 {
				e = g.next()
				size = e.PageSize
			}
			lead = 0

			n := min(size, len(rest))
			p := Page{Address: addr, WriteLatency: e.WriteLatency, Bytes: rest[:n:n]}
			if !yield(p) {
				return
			}
			rest = rest[n:]
			addr += n
		}
	}, nil
}
