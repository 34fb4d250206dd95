// SPDX-License-Identifier: EPL-2.0

package flashspec

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/audboot/errs"
)

// Entry is one row of the flash geometry.
type Entry struct {
	PageSize     int
	WriteLatency time.Duration
	// Count is the number of pages the entry covers. Zero means the entry
	// applies to all remaining pages.
	Count int
}

// Unbounded reports whether the entry covers all remaining pages.
func (e Entry) Unbounded() bool { return e.Count == 0 }

// Table is an ordered flash geometry.
type Table []Entry

// Format renders the table back into token form, using unit for latencies.
func (t Table) Format(unit time.Duration) string {
	tokens := make([]string, 0, len(t))
	for _, e := range t {
		tok := strconv.Itoa(e.PageSize) + ":" + strconv.FormatInt(int64(e.WriteLatency/unit), 10)
		if !e.Unbounded() {
			tok += ":" + strconv.Itoa(e.Count)
		}
		tokens = append(tokens, tok)
	}
	return strings.Join(tokens, " ")
}

// String renders the table with millisecond latencies.
func (t Table) String() string {
	return t.Format(time.Millisecond)
}

// ParseFlashSpec parses size:time[:count] tokens. time is multiplied by unit.
// Only the last token may omit count.
func ParseFlashSpec(tokens []string, unit time.Duration) (Table, error) {
	if len(tokens) == 0 {
		return nil, errs.NewParseError("flash spec", "", "no entries")
	}
	if unit <= 0 {
		return nil, errs.NewConfigError("time unit", unit, "must be positive")
	}

	table := make(Table, 0, len(tokens))
	for i, tok := range tokens {
		e, err := parseEntry(tok, unit)
		if err != nil {
			return nil, err
		}
		if e.Unbounded() && i != len(tokens)-1 {
			return nil, errs.NewParseError("flash spec", tok, "only the last entry may omit the page count")
		}
		table = append(table, e)
	}

	return table, nil
}

// ParseFlashSpecString splits s on whitespace and commas and parses the
// resulting tokens.
func ParseFlashSpecString(s string, unit time.Duration) (Table, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	return ParseFlashSpec(tokens, unit)
}

func parseEntry(tok string, unit time.Duration) (Entry, error) {
	fields := strings.Split(tok, ":")
	if len(fields) < 2 || len(fields) > 3 {
		return Entry{}, errs.NewParseError("flash spec", tok, "want size:time[:count]")
	}

	size, err := parseSize("page size", fields[0])
	if err != nil {
		return Entry{}, wrapToken(tok, err)
	}
	if size == 0 {
		return Entry{}, errs.NewParseError("flash spec", tok, "page size must be positive")
	}

	t, err := parseSize("write time", fields[1])
	if err != nil {
		return Entry{}, wrapToken(tok, err)
	}
	if int64(t) > math.MaxInt64/int64(unit) {
		return Entry{}, errs.NewParseError("flash spec", tok, "write time out of range")
	}

	e := Entry{PageSize: size, WriteLatency: time.Duration(t) * unit}

	if len(fields) == 3 {
		count, err := parseSize("page count", fields[2])
		if err != nil {
			return Entry{}, wrapToken(tok, err)
		}
		if count == 0 {
			return Entry{}, errs.NewParseError("flash spec", tok, "page count must be positive")
		}
		e.Count = count
	}

	return e, nil
}

// wrapToken reports a field failure against the whole entry so the message
// names the token the user wrote.
func wrapToken(tok string, err error) error {
	return &errs.ParseError{Field: "flash spec", Token: tok, Err: err}
}
