// SPDX-License-Identifier: EPL-2.0

package frame

import (
	"iter"
	"time"

	"github.com/ik5/audboot/qpsk"
)

var (
	Resync      = resync
	Alignment   = alignment
	EncodeByte  = encodeByte
	EncodeBlock = encodeBlock
)

func (e *Encoder) Intro() iter.Seq[qpsk.Symbol] { return e.intro() }

func (e *Encoder) Blank(d time.Duration) iter.Seq[qpsk.Symbol] { return e.blank(d) }

func (e *Encoder) DurationSymbols(d time.Duration) int { return e.durationSymbols(d) }
