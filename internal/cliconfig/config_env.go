// SPDX-License-Identifier: EPL-2.0

package cliconfig

import (
	"os"
	"strings"
)

// ApplyEnvConfig applies AUDBOOT_* environment variables. Flags that were
// set explicitly win. AUDBOOT_FLASH_SPEC holds the entries separated by
// spaces or commas.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("format", os.Getenv("AUDBOOT_FORMAT"), &cfg.Format)
	s.setString("input", os.Getenv("AUDBOOT_INPUT"), &cfg.Input)
	s.setString("output", os.Getenv("AUDBOOT_OUTPUT"), &cfg.Output)
	s.setString("constellation", os.Getenv("AUDBOOT_CONSTELLATION"), &cfg.Constellation)
	s.setString("block-size", os.Getenv("AUDBOOT_BLOCK_SIZE"), &cfg.BlockSize)
	s.setString("start-address", os.Getenv("AUDBOOT_START_ADDRESS"), &cfg.StartAddress)
	s.setString("packet-size", os.Getenv("AUDBOOT_PACKET_SIZE"), &cfg.PacketSize)
	s.setString("log-level", os.Getenv("AUDBOOT_LOG_LEVEL"), &cfg.LogLevel)

	if spec := strings.TrimSpace(os.Getenv("AUDBOOT_FLASH_SPEC")); spec != "" {
		s.setStrings("flash-spec", []string{spec}, &cfg.FlashSpec)
	}

	ints := []struct {
		flag, env string
		dst       *int
	}{
		{"sample-rate", "AUDBOOT_SAMPLE_RATE", &cfg.SampleRate},
		{"symbol-rate", "AUDBOOT_SYMBOL_RATE", &cfg.SymbolRate},
		{"carrier", "AUDBOOT_CARRIER", &cfg.CarrierFrequency},
		{"warmup", "AUDBOOT_WARMUP", &cfg.Warmup},
		{"fill", "AUDBOOT_FILL", &cfg.Fill},
	}
	for _, v := range ints {
		if err := s.setIntFromString(v.flag, os.Getenv(v.env), v.dst); err != nil {
			return err
		}
	}

	if err := s.setBoolFromString("packet-preamble", os.Getenv("AUDBOOT_PACKET_PREAMBLE"), &cfg.PacketPreamble); err != nil {
		return err
	}

	return s.setDuration("time-unit", os.Getenv("AUDBOOT_TIME_UNIT"), &cfg.TimeUnit)
}
