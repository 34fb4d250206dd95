// SPDX-License-Identifier: EPL-2.0

// Package ihex loads Intel-HEX images into a flat buffer.
//
// The buffer spans from the lowest to the highest data address in the file.
// Holes between records are filled with the loader's fill byte, the same
// value the encoder pads with, so erased flash reads back unchanged.
package ihex
