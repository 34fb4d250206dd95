// SPDX-License-Identifier: EPL-2.0

package qpsk

import (
	"fmt"
	"strings"

	"github.com/ik5/audboot/errs"
)

// Symbol is a dibit (0-3) or Blank.
type Symbol uint8

// Blank is a silent symbol slot.
const Blank Symbol = 4

// Valid reports whether s can be modulated.
func (s Symbol) Valid() bool { return s <= Blank }

func (s Symbol) String() string {
	if s == Blank {
		return "blank"
	}
	return fmt.Sprintf("%d", uint8(s))
}

// Constellation selects how dibits map onto carrier phases.
type Constellation int

const (
	// Gray maps bit 1 to the sign of the in-phase component and bit 0 to
	// the quadrature component, so adjacent phases differ in one bit. This
	// is what the bootloader's demodulator decides on.
	Gray Constellation = iota
	// Natural offsets the carrier phase by symbol×90°.
	Natural
)

func (c Constellation) String() string {
	switch c {
	case Gray:
		return "gray"
	case Natural:
		return "natural"
	default:
		return fmt.Sprintf("constellation(%d)", int(c))
	}
}

// ParseConstellation accepts "gray" or "natural" (any case). Empty means Gray.
func ParseConstellation(name string) (Constellation, error) {
	switch strings.ToLower(name) {
	case "", "gray":
		return Gray, nil
	case "natural":
		return Natural, nil
	default:
		return Gray, errs.NewParseError("constellation", name, "want gray or natural")
	}
}
