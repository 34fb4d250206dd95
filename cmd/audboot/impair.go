// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/audboot"
	"github.com/ik5/audboot/audio"
	"github.com/ik5/audboot/formats/wav"
	"github.com/ik5/audboot/log"
)

func newImpairCommand() *cobra.Command {
	imp := audboot.DefaultImpairment()
	input, output := "-", "-"
	logLevel := "info"

	cmd := &cobra.Command{
		Use:   "impair",
		Short: "Pass a WAV file through a simulated audio channel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(logLevel)
			if err != nil {
				return err
			}

			in, err := openInput(input, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			var decoder audio.Decoder = wav.Decoder{}
			src, err := decoder.Decode(in)
			if err != nil {
				return fmt.Errorf("read %s: %w", input, err)
			}
			inRate := src.SampleRate()

			impaired, rate, err := audboot.ImpairSource(src, imp)
			if err != nil {
				return err
			}

			out := newLazyOutput(output, cmd.OutOrStdout())
			if err := wav.WriteWAV16(out, rate, impaired); err != nil {
				_ = out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return fmt.Errorf("close output: %w", err)
			}

			logger.Info("impaired signal",
				log.Int("rate_in", inRate),
				log.Int("rate_out", rate),
				log.Int("samples_out", len(impaired)),
				log.Float64("drift", imp.Drift),
				log.Float64("gain", imp.Gain),
				log.Float64("noise", imp.Noise),
			)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", input, "input WAV file, - for stdin")
	f.StringVarP(&output, "output", "o", output, "output WAV file, - for stdout")
	f.IntVar(&imp.Rate, "rate", imp.Rate, "receiver sample rate in Hz (0: keep the input rate)")
	f.Float64Var(&imp.Drift, "drift", imp.Drift, "clock drift ratio (1.02 plays 2% slow)")
	f.Float64Var(&imp.Gain, "gain", imp.Gain, "amplitude scale")
	f.Float64Var(&imp.Noise, "noise", imp.Noise, "peak uniform noise, relative to full scale")
	f.Uint64Var(&imp.Seed, "seed", imp.Seed, "noise seed")
	f.StringVar(&logLevel, "log-level", logLevel, "log level: debug, info, warn, error")

	return cmd
}
