// SPDX-License-Identifier: EPL-2.0

// Command audboot encodes firmware images into QPSK audio for the audio
// bootloader and simulates a noisy channel for receiver tests.
package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ik5/audboot/log"
)

var exampleUsage = strings.TrimSpace(`
  audboot encode -t hex -f "1024:40" -w 10 -i firmware.hex -o firmware.wav
  audboot encode -t bin -i - -o - < firmware.bin | aplay
  audboot impair -i firmware.wav -o noisy.wav --drift 1.02 --gain 0.1 --noise 0.01
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func versionString() string {
	return fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH)
}

// newLogger writes to stderr; stdout may carry the WAV.
func newLogger(level string) (*log.ZerologAdapter, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewZerologAdapter(os.Stderr, lvl), nil
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "audboot",
		Short:         "Encode firmware images as QPSK audio for an audio bootloader",
		Example:       exampleUsage,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newEncodeCommand(), newImpairCommand(), newVersionCommand())
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "audboot", versionString())
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
		logger.Error("audboot", log.Err(err))
		os.Exit(1)
	}
}
