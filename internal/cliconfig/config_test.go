// SPDX-License-Identifier: EPL-2.0

package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/ik5/audboot"
	"github.com/ik5/audboot/errs"
	"github.com/ik5/audboot/qpsk"
)

func TestDefaultConfig_BuildsLibraryDefaults(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	got, err := c.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := audboot.DefaultConfig()
	if got.SampleRate != want.SampleRate || got.SymbolRate != want.SymbolRate ||
		got.BlockSize != want.BlockSize || got.PacketSize != want.PacketSize ||
		got.StartAddress != want.StartAddress || got.Warmup != want.Warmup ||
		got.FillByte != want.FillByte || got.Constellation != want.Constellation ||
		got.FlashSpec.String() != want.FlashSpec.String() {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestBuild_ParsesTokens(t *testing.T) {
	t.Parallel()

	c := DefaultConfig()
	c.BlockSize = "4K"
	c.PacketSize = "1k"
	c.StartAddress = "32K"
	c.FlashSpec = []string{"16K:500:2", "64K:1100:1,128K:2000"}
	c.Warmup = 10
	c.TimeUnit = time.Microsecond
	c.Constellation = "natural"

	got, err := c.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got.BlockSize != 4096 || got.PacketSize != 1024 || got.StartAddress != 32768 {
		t.Errorf("sizes = %d/%d/%d", got.BlockSize, got.PacketSize, got.StartAddress)
	}
	if got.Warmup != 10*time.Microsecond {
		t.Errorf("Warmup = %v, want 10µs", got.Warmup)
	}
	if len(got.FlashSpec) != 3 || got.FlashSpec[1].WriteLatency != 1100*time.Microsecond {
		t.Errorf("FlashSpec = %+v", got.FlashSpec)
	}
	if got.Constellation != qpsk.Natural {
		t.Errorf("Constellation = %v, want natural", got.Constellation)
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"format", func(c *Config) { c.Format = "elf" }, errs.ErrConfiguration},
		{"input", func(c *Config) { c.Input = "" }, errs.ErrConfiguration},
		{"time unit", func(c *Config) { c.TimeUnit = 0 }, errs.ErrConfiguration},
		{"warmup", func(c *Config) { c.Warmup = -1 }, errs.ErrConfiguration},
		{"fill", func(c *Config) { c.Fill = 256 }, errs.ErrConfiguration},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, errs.ErrConfiguration},
		{"block size", func(c *Config) { c.BlockSize = "1M" }, errs.ErrParse},
		{"packet size", func(c *Config) { c.PacketSize = "" }, errs.ErrParse},
		{"flash spec", func(c *Config) { c.FlashSpec = []string{"1024"} }, errs.ErrParse},
		{"constellation", func(c *Config) { c.Constellation = "8psk" }, errs.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := DefaultConfig()
			tt.mutate(&c)
			if _, err := c.Build(); !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}
