// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/ik5/audboot"
	"github.com/ik5/audboot/internal/cliconfig"
	"github.com/ik5/audboot/log"
)

func newEncodeCommand() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode a bin or hex image into a WAV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			} else if cfgPath != "" {
				return fmt.Errorf("config file %s not found", cfgPath)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			libCfg, err := cfg.Build()
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			logger.Debug("configuration",
				log.String("format", cfg.Format),
				log.String("input", cfg.Input),
				log.String("output", cfg.Output),
				log.Int("sample_rate", libCfg.SampleRate),
				log.Int("symbol_rate", libCfg.SymbolRate),
				log.Int("block_size", libCfg.BlockSize),
				log.String("flash_spec", libCfg.FlashSpec.Format(cfg.TimeUnit)),
				log.Hex("start_address", libCfg.StartAddress),
				log.Duration("warmup", libCfg.Warmup),
				log.Int("packet_size", libCfg.PacketSize),
				log.Bool("packet_preamble", libCfg.PacketPreamble),
			)

			in, err := openInput(cfg.Input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			out := newLazyOutput(cfg.Output, cmd.OutOrStdout())
			if err := audboot.Run(in, out, cfg.Format, libCfg, audboot.WithLogger(logger)); err != nil {
				_ = out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}

			logger.Info("wrote signal", log.String("output", cfg.Output))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "path to config file, .toml or .yaml (default: $HOME/.audboot/config.toml)")
	f.StringVarP(&cfg.Format, "format", "t", cfg.Format, "input format: bin or hex")
	f.StringVarP(&cfg.Input, "input", "i", cfg.Input, "input file, - for stdin")
	f.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output WAV file, - for stdout")
	f.IntVarP(&cfg.SampleRate, "sample-rate", "s", cfg.SampleRate, "output sample rate in Hz")
	f.IntVarP(&cfg.SymbolRate, "symbol-rate", "c", cfg.SymbolRate, "symbol rate in Hz, must divide the sample rate")
	f.IntVar(&cfg.CarrierFrequency, "carrier", cfg.CarrierFrequency, "carrier frequency in Hz (0: the symbol rate)")
	f.StringVar(&cfg.Constellation, "constellation", cfg.Constellation, "symbol mapping: gray or natural")
	f.StringVarP(&cfg.BlockSize, "block-size", "b", cfg.BlockSize, "padding block size in bytes, K suffix allowed")
	f.StringArrayVarP(&cfg.FlashSpec, "flash-spec", "f", cfg.FlashSpec, "flash geometry size:time[:count] entries, repeatable")
	f.StringVarP(&cfg.StartAddress, "start-address", "a", cfg.StartAddress, "flash offset of the first byte, K suffix allowed")
	f.IntVarP(&cfg.Warmup, "warmup", "w", cfg.Warmup, "intro tone length in time units")
	f.StringVarP(&cfg.PacketSize, "packet-size", "p", cfg.PacketSize, "packet size in bytes, K suffix allowed")
	f.BoolVar(&cfg.PacketPreamble, "packet-preamble", cfg.PacketPreamble, "send resync and alignment before every packet instead of once per page")
	f.IntVar(&cfg.Fill, "fill", cfg.Fill, "fill byte for padding and Intel-HEX holes")
	f.DurationVar(&cfg.TimeUnit, "time-unit", cfg.TimeUnit, "unit of warmup and flash write times")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	return cmd
}
