// SPDX-License-Identifier: EPL-2.0

// Package chunk splits a payload into protocol blocks and flash pages.
//
// All chunkers are single-pass forward iterators (iter.Seq) over the input
// slice. Yielded byte slices alias the input wherever no padding is needed,
// so callers must not modify them.
//
//	blocks, _ := chunk.Blocks(data, 1024, 0xFF)
//	for b := range blocks {
//	    // len(b.Bytes) == 1024
//	}
//
//	pages, _ := chunk.Pages(data, table, 0)
//	for p := range pages {
//	    // p.WriteLatency, p.Bytes
//	}
package chunk
