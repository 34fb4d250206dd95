// SPDX-License-Identifier: EPL-2.0

// Package cliconfig assembles the encoder configuration from flags, the
// environment and an optional config file.
package cliconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ik5/audboot"
	"github.com/ik5/audboot/errs"
	"github.com/ik5/audboot/flashspec"
	"github.com/ik5/audboot/log"
	"github.com/ik5/audboot/qpsk"
)

// StdStream is the location that means standard input or output.
const StdStream = "-"

// Config holds the CLI surface of the encode command. Byte sizes stay
// strings until Build so flags, files and the environment share the size
// parser and its messages.
type Config struct {
	Format string
	Input  string
	Output string

	SampleRate       int
	SymbolRate       int
	CarrierFrequency int
	Constellation    string

	BlockSize    string
	FlashSpec    []string
	StartAddress string
	PacketSize   string
	Fill         int

	PacketPreamble bool

	// Warmup is counted in TimeUnit, like the flash spec write times.
	Warmup   int
	TimeUnit time.Duration

	LogLevel string
}

// DefaultConfig mirrors audboot.DefaultConfig.
func DefaultConfig() Config {
	return Config{
		Format:        "bin",
		Input:         StdStream,
		Output:        StdStream,
		SampleRate:    48000,
		SymbolRate:    6000,
		Constellation: qpsk.Gray.String(),
		BlockSize:     "1024",
		FlashSpec:     []string{"1024:25"},
		StartAddress:  "0",
		PacketSize:    "256",
		Fill:          audboot.DefaultFillByte,
		Warmup:        1000,
		TimeUnit:      time.Millisecond,
		LogLevel:      "info",
	}
}

// Validate checks the values that do not need parsing.
func (c *Config) Validate() error {
	switch c.Format {
	case "bin", "hex":
	default:
		return errs.NewConfigError("input format", c.Format, "want bin or hex")
	}
	if c.Input == "" {
		return errs.NewConfigError("input", `""`, "is required (use - for stdin)")
	}
	if c.Output == "" {
		return errs.NewConfigError("output", `""`, "is required (use - for stdout)")
	}
	if c.TimeUnit <= 0 {
		return errs.NewConfigError("time unit", c.TimeUnit, "must be positive")
	}
	if c.Warmup < 0 {
		return errs.NewConfigError("warmup", c.Warmup, "must not be negative")
	}
	if c.Fill < 0 || c.Fill > 0xFF {
		return errs.NewConfigError("fill byte", c.Fill, "must fit in a byte")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errs.NewConfigError("log level", c.LogLevel, "%v", err)
	}
	return nil
}

// Build parses the string fields into an encoder configuration.
func (c *Config) Build() (audboot.Config, error) {
	if err := c.Validate(); err != nil {
		return audboot.Config{}, err
	}

	cfg := audboot.Config{
		SampleRate:       c.SampleRate,
		SymbolRate:       c.SymbolRate,
		CarrierFrequency: c.CarrierFrequency,
		FillByte:         byte(c.Fill),
		Warmup:           time.Duration(c.Warmup) * c.TimeUnit,
		PacketPreamble:   c.PacketPreamble,
	}

	var err error
	if cfg.Constellation, err = qpsk.ParseConstellation(c.Constellation); err != nil {
		return audboot.Config{}, err
	}
	if cfg.BlockSize, err = parseSizeFlag("block size", c.BlockSize); err != nil {
		return audboot.Config{}, err
	}
	if cfg.StartAddress, err = parseSizeFlag("start address", c.StartAddress); err != nil {
		return audboot.Config{}, err
	}
	if cfg.PacketSize, err = parseSizeFlag("packet size", c.PacketSize); err != nil {
		return audboot.Config{}, err
	}
	if cfg.FlashSpec, err = flashspec.ParseFlashSpecString(strings.Join(c.FlashSpec, " "), c.TimeUnit); err != nil {
		return audboot.Config{}, err
	}

	return cfg, nil
}

func parseSizeFlag(name, token string) (int, error) {
	n, err := flashspec.ParseSize(token)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

// configSetter applies values while respecting flag precedence: a value is
// only applied if the corresponding flag was not set explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets a positive int if the flag did not change it.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets any int, zero included, when value is present.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setBoolPtr(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}

func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses an environment value. Unlike setInt it accepts
// zero, since the environment has no other way to say it.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}
