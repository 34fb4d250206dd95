// SPDX-License-Identifier: EPL-2.0

// Package flashspec parses the human-written size and flash geometry tokens
// of the encoder's configuration surface.
//
// Sizes are decimal integers with an optional K/k suffix (×1024):
//
//	flashspec.ParseSize("16")  // 16
//	flashspec.ParseSize("16K") // 16384
//
// A flash geometry is an ordered list of size:time[:count] tokens. Each entry
// describes count pages of size bytes that need time (in the configured time
// unit) to be written. The last entry may omit count and then covers every
// remaining page:
//
//	table, err := flashspec.ParseFlashSpec([]string{"16K:500:4", "64K:1100:1", "128K:2000"}, time.Millisecond)
package flashspec
