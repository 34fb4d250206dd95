// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/ik5/audboot/internal/audiotest"
)

func TestSignalSource(t *testing.T) {
	t.Parallel()

	src := NewSignalSource([]int16{0, 32767, -32767, 1}, 48000)
	got := readAll(t, src, 3)
	want := []float32{0, 1, -1, 1.0 / 32767}

	if !slices.Equal(got, want) {
		t.Errorf("samples = %v, want %v", got, want)
	}
}

func TestGain(t *testing.T) {
	t.Parallel()

	got := readAll(t, NewGain(audiotest.NewConstantSource(8000, 10, 0.5), 0.1), 4)
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	for _, v := range got {
		if math.Abs(float64(v-0.05)) > 1e-7 {
			t.Fatalf("sample = %v, want 0.05", v)
		}
	}
}

func TestNoise_SeededAndBounded(t *testing.T) {
	t.Parallel()

	run := func(seed uint64) []float32 {
		n, err := NewNoise(audiotest.NewConstantSource(8000, 5000, 0), 0.01, seed)
		if err != nil {
			t.Fatal(err)
		}
		return readAll(t, n, 512)
	}

	a, b, c := run(1), run(1), run(2)
	if !slices.Equal(a, b) {
		t.Error("same seed produced different noise")
	}
	if slices.Equal(a, c) {
		t.Error("different seeds produced the same noise")
	}
	for i, v := range a {
		if v < -0.01 || v > 0.01 {
			t.Fatalf("sample %d = %v outside ±0.01", i, v)
		}
	}
}

func TestNoise_NegativeAmplitude(t *testing.T) {
	t.Parallel()

	if _, err := NewNoise(audiotest.NewConstantSource(8000, 1, 0), -1, 0); !errors.Is(err, ErrInvalidAmplitude) {
		t.Errorf("NewNoise(-1) error = %v, want ErrInvalidAmplitude", err)
	}
}

func TestCollect16_Clamps(t *testing.T) {
	t.Parallel()

	src := NewGain(NewSignalSource([]int16{32767, -32767, 16384, 0}, 8000), 4)
	got, err := Collect16(src, 3)
	if err != nil {
		t.Fatalf("Collect16() error = %v", err)
	}
	if want := []int16{32767, -32767, 32767, 0}; !slices.Equal(got, want) {
		t.Errorf("Collect16() = %v, want %v", got, want)
	}

	if _, err := Collect16(src, 0); !errors.Is(err, ErrInvalidBufSize) {
		t.Errorf("Collect16(buf 0) error = %v, want ErrInvalidBufSize", err)
	}
}
