// SPDX-License-Identifier: EPL-2.0

package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig mirrors Config for TOML and YAML files. Durations are strings
// and values that may legitimately be zero are pointers.
type FileConfig struct {
	Format string `toml:"format" yaml:"format"`
	Input  string `toml:"input" yaml:"input"`
	Output string `toml:"output" yaml:"output"`

	SampleRate       int    `toml:"sample_rate" yaml:"sample_rate"`
	SymbolRate       int    `toml:"symbol_rate" yaml:"symbol_rate"`
	CarrierFrequency int    `toml:"carrier" yaml:"carrier"`
	Constellation    string `toml:"constellation" yaml:"constellation"`

	BlockSize    string   `toml:"block_size" yaml:"block_size"`
	FlashSpec    []string `toml:"flash_spec" yaml:"flash_spec"`
	StartAddress string   `toml:"start_address" yaml:"start_address"`
	PacketSize   string   `toml:"packet_size" yaml:"packet_size"`
	Fill         *int     `toml:"fill" yaml:"fill"`

	PacketPreamble *bool `toml:"packet_preamble" yaml:"packet_preamble"`

	Warmup   *int   `toml:"warmup" yaml:"warmup"`
	TimeUnit string `toml:"time_unit" yaml:"time_unit"`

	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// LoadFileConfig reads a config file. Files ending in .yaml or .yml are
// YAML, anything else is TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		err = toml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.audboot/config.toml, or "" without a home
// directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".audboot", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg unless the matching flag was
// set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("format", fc.Format, &cfg.Format)
	s.setString("input", fc.Input, &cfg.Input)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("constellation", fc.Constellation, &cfg.Constellation)
	s.setString("block-size", fc.BlockSize, &cfg.BlockSize)
	s.setString("start-address", fc.StartAddress, &cfg.StartAddress)
	s.setString("packet-size", fc.PacketSize, &cfg.PacketSize)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setStrings("flash-spec", fc.FlashSpec, &cfg.FlashSpec)

	s.setInt("sample-rate", fc.SampleRate, &cfg.SampleRate)
	s.setInt("symbol-rate", fc.SymbolRate, &cfg.SymbolRate)
	s.setInt("carrier", fc.CarrierFrequency, &cfg.CarrierFrequency)
	s.setIntPtr("warmup", fc.Warmup, &cfg.Warmup)
	s.setIntPtr("fill", fc.Fill, &cfg.Fill)
	s.setBoolPtr("packet-preamble", fc.PacketPreamble, &cfg.PacketPreamble)

	if err := s.setDuration("time-unit", fc.TimeUnit, &cfg.TimeUnit); err != nil {
		return err
	}

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
