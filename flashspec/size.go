// SPDX-License-Identifier: EPL-2.0

package flashspec

import (
	"math"
	"strconv"
	"strings"

	"github.com/ik5/audboot/errs"
)

const kibi = 1024

// ParseSize parses a decimal size with an optional K or k suffix.
func ParseSize(token string) (int, error) {
	return parseSize("size", token)
}

func parseSize(field, token string) (int, error) {
	body := token
	multiplier := 1

	if n := len(body); n > 0 {
		switch body[n-1] {
		case 'K', 'k':
			body = body[:n-1]
			multiplier = kibi
		}
	}

	if body == "" {
		return 0, errs.NewParseError(field, token, "missing number")
	}
	// strconv accepts a leading sign; sizes never carry one.
	if strings.IndexFunc(body, notDigit) >= 0 {
		return 0, errs.NewParseError(field, token, "not a decimal number")
	}

	n, err := strconv.Atoi(body)
	if err != nil {
		return 0, &errs.ParseError{Field: field, Token: token, Err: err}
	}
	if n > math.MaxInt/multiplier {
		return 0, errs.NewParseError(field, token, "value out of range")
	}

	return n * multiplier, nil
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}
