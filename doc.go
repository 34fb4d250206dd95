// SPDX-License-Identifier: EPL-2.0

// Package audboot encodes firmware images as QPSK audio for a bootloader
// that listens on its line input.
//
// The pipeline loads an image (raw binary or Intel-HEX), pads it to whole
// blocks, cuts it into flash pages following the target's geometry, frames
// every page with a preamble and CRC-protected packets, and modulates the
// resulting symbols onto a carrier:
//
//	cfg := audboot.DefaultConfig()
//	cfg.FlashSpec, _ = flashspec.ParseFlashSpecString("1024:40", time.Millisecond)
//
//	in, _ := os.Open("firmware.hex")
//	out, _ := os.Create("firmware.wav")
//	err := audboot.Run(in, out, "hex", cfg)
//
// Encode stops at the signal for callers that want to play it directly.
// Impair runs a signal through a simulated audio channel (clock drift,
// attenuation and noise) to check a receiver against realistic input.
//
// Encoding is a pure function of the image and the Config: the same input
// always produces the same samples, whichever loader or sink is used.
package audboot
