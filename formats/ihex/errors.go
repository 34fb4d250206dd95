// SPDX-License-Identifier: EPL-2.0

package ihex

import "errors"

var (
	ErrInvalidHex = errors.New("invalid Intel-HEX")
	ErrImageSize  = errors.New("image exceeds 32-bit address space")
)
