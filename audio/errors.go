// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidRatio     = errors.New("resampling ratio must be positive")
	ErrInvalidAmplitude = errors.New("noise amplitude must not be negative")
	ErrInvalidBufSize   = errors.New("buffer size must be positive")
)
