// SPDX-License-Identifier: EPL-2.0

package qpsk

import "errors"

var (
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrReaderClosed  = errors.New("reader closed")
)
