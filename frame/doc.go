// SPDX-License-Identifier: EPL-2.0

// Package frame lays flash pages out as the symbol stream the bootloader
// listens for.
//
// A stream is an intro tone followed by one frame per page and a trailing
// blank. Every frame starts with a resync run and the alignment bytes
// 99 99 99 99 CC CC CC CC, carries the page as CRC-protected packets and ends
// with a blank while the target commits the page to flash:
//
//	intro | resync align pkt crc pkt crc ... blank | resync align ... | outro
//
// Bytes map to four symbols, most significant dibit first.
package frame
