// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/audboot/formats/wav"
	"github.com/ik5/audboot/internal/audiotest"
)

func run(t *testing.T, stdin []byte, args ...string) ([]byte, error) {
	t.Helper()

	// Keep a developer's ~/.audboot/config.toml out of the test.
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.Bytes(), err
}

var goldenArgs = []string{
	"-s", "48000", "-c", "6000", "-b", "1024", "-f", "1024:40",
	"-a", "0", "-w", "10", "-p", "256", "--log-level", "error",
}

func TestEncode_FileAndStreamIdentical(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "golden.bin")
	out := filepath.Join(dir, "golden.wav")
	if err := os.WriteFile(in, audiotest.GoldenPayload(), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, nil, append([]string{"encode", "-t", "bin", "-i", in, "-o", out}, goldenArgs...)...); err != nil {
		t.Fatalf("encode to file: %v", err)
	}
	stream, err := run(t, audiotest.GoldenPayload(), append([]string{"encode", "-t", "bin", "-i", "-", "-o", "-"}, goldenArgs...)...)
	if err != nil {
		t.Fatalf("encode to stdout: %v", err)
	}

	file, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(file, stream) {
		t.Errorf("file output (%d bytes) differs from stdout output (%d bytes)", len(file), len(stream))
	}
}

func TestEncode_FailureLeavesNoFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "never.wav")

	_, err := run(t, []byte{1, 2, 3}, "encode", "-i", "-", "-o", out, "-s", "48000", "-c", "7000")
	if err == nil {
		t.Fatal("encode with a 7000 Hz symbol rate succeeded")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("output file exists after a failed run")
	}
}

func TestEncode_ConfigFile(t *testing.T) {
	home := t.TempDir()
	cfgPath := filepath.Join(home, "audboot.yaml")
	if err := os.WriteFile(cfgPath, []byte("format: bin\nwarmup: 10\nflash_spec: [\"1024:40\"]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	viaFile, err := run(t, audiotest.GoldenPayload(), "encode", "--config", cfgPath, "--log-level", "error")
	if err != nil {
		t.Fatalf("encode --config: %v", err)
	}
	viaFlags, err := run(t, audiotest.GoldenPayload(), append([]string{"encode"}, goldenArgs...)...)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(viaFile, viaFlags) {
		t.Error("config file and flags disagree")
	}
}

func TestEncode_PacketPreamble(t *testing.T) {
	perPage, err := run(t, audiotest.GoldenPayload(), append([]string{"encode"}, goldenArgs...)...)
	if err != nil {
		t.Fatal(err)
	}
	perPacket, err := run(t, audiotest.GoldenPayload(), append([]string{"encode", "--packet-preamble"}, goldenArgs...)...)
	if err != nil {
		t.Fatalf("encode --packet-preamble: %v", err)
	}

	// 10 pages of 4 packets: 30 extra preambles of 64 symbols, 8 samples
	// each, 2 bytes per sample.
	if got, want := len(perPacket)-len(perPage), 30*64*8*2; got != want {
		t.Errorf("--packet-preamble adds %d bytes, want %d", got, want)
	}
}

func TestImpair(t *testing.T) {
	signal := make([]int16, 4800)
	for i := range signal {
		signal[i] = int16(i % 1000)
	}
	var in bytes.Buffer
	if err := wav.WriteWAV16(&in, 48000, signal); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, in.Bytes(), "impair", "--drift", "1.02", "--gain", "0.5", "--noise", "0.01", "--seed", "3", "--log-level", "error")
	if err != nil {
		t.Fatalf("impair: %v", err)
	}
	rate, got, err := wav.ReadWAV16(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if rate != 48000 || len(got) <= len(signal) {
		t.Errorf("impaired %d Hz, %d samples from %d", rate, len(got), len(signal))
	}
}

func TestImpair_ReceiverRate(t *testing.T) {
	signal := make([]int16, 4410)
	var in bytes.Buffer
	if err := wav.WriteWAV16(&in, 44100, signal); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, in.Bytes(), "impair", "--rate", "16000", "--log-level", "error")
	if err != nil {
		t.Fatalf("impair --rate: %v", err)
	}
	rate, got, err := wav.ReadWAV16(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if rate != 16000 || len(got) < 1599 || len(got) > 1601 {
		t.Errorf("impaired to %d Hz with %d samples, want 16000 Hz and about 1600", rate, len(got))
	}
}

func TestImpair_RejectsNonWAV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "never.wav")
	if _, err := run(t, []byte("not a wav file at all, just text"), "impair", "-o", out); err == nil {
		t.Fatal("impair accepted a non-WAV input")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("output file exists after a failed impair")
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, nil, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(out), "audboot ") {
		t.Errorf("version output = %q", out)
	}
}
