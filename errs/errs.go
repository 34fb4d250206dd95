// SPDX-License-Identifier: EPL-2.0

// Package errs holds the error taxonomy shared by every stage of the encoder.
//
// Two classes exist: parse failures of human-written tokens (sizes and
// flash-geometry entries) and configuration failures (values that parse but
// cannot work together). Both are fatal to a run. Use errors.Is with
// ErrParse or ErrConfiguration to classify, or errors.As with *ParseError and
// *ConfigError to reach the offending value.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrParse         = errors.New("parse error")
	ErrConfiguration = errors.New("configuration error")
)

// ParseError reports a malformed token.
type ParseError struct {
	// Field names what was being parsed ("size", "flash spec", ...).
	Field string
	// Token is the offending input, verbatim.
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parse %s %q", e.Field, e.Token)
	}
	return fmt.Sprintf("parse %s %q: %v", e.Field, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// NewParseError builds a ParseError with a formatted reason.
func NewParseError(field, token, format string, args ...any) *ParseError {
	return &ParseError{Field: field, Token: token, Err: fmt.Errorf(format, args...)}
}

// ConfigError reports a value that is well formed but unusable.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

// NewConfigError builds a ConfigError with a formatted reason.
func NewConfigError(field string, value any, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
