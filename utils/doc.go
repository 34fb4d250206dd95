// SPDX-License-Identifier: EPL-2.0

// Package utils holds the small numeric helpers shared by the modulator and
// the channel simulator: PCM quantisation and cubic interpolation.
package utils
