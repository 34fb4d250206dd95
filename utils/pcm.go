// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FullScale is the largest positive 16-bit PCM value. Negative samples use the
// same scale so the waveform stays symmetric.
const FullScale = math.MaxInt16

// Quantize16 maps x in [-1, 1] to 16-bit PCM, rounding half away from zero.
// Out of range values are clamped.
func Quantize16(x float64) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(math.Round(x * FullScale))
}

// Float32ToInt16 is Quantize16 for float32 sample chains.
func Float32ToInt16(x float32) int16 {
	return Quantize16(float64(x))
}

// Int16ToFloat32 is the inverse scaling of Quantize16.
func Int16ToFloat32(s int16) float32 {
	return float32(s) / FullScale
}
