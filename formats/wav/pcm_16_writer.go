// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// HeaderSize is the length of the canonical PCM header.
const HeaderSize = 44

// MaxSamples is the longest mono 16-bit signal a RIFF chunk can describe.
const MaxSamples = (math.MaxUint32 - 36) / bytesPerFrame

const (
	formatPCM     = 1
	bitsPerSample = 16
	bytesPerFrame = bitsPerSample / 8
)

// Header returns the header of a mono 16-bit file holding numSamples
// samples at sampleRate.
func Header(sampleRate, numSamples int) ([HeaderSize]byte, error) {
	var h [HeaderSize]byte

	if sampleRate <= 0 || sampleRate > math.MaxUint32/bytesPerFrame {
		return h, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if numSamples < 0 || numSamples > MaxSamples {
		return h, fmt.Errorf("%w: %d samples do not fit a RIFF chunk", ErrUnsupportedWavLayout, numSamples)
	}

	dataSize := uint32(numSamples) * bytesPerFrame

	le := binary.LittleEndian
	copy(h[0:], "RIFF")
	le.PutUint32(h[4:], 36+dataSize)
	copy(h[8:], "WAVE")

	copy(h[12:], "fmt ")
	le.PutUint32(h[16:], 16)
	le.PutUint16(h[20:], formatPCM)
	le.PutUint16(h[22:], 1)
	le.PutUint32(h[24:], uint32(sampleRate))
	le.PutUint32(h[28:], uint32(sampleRate)*bytesPerFrame)
	le.PutUint16(h[32:], bytesPerFrame)
	le.PutUint16(h[34:], bitsPerSample)

	copy(h[36:], "data")
	le.PutUint32(h[40:], dataSize)

	return h, nil
}

const chunkSamples = 8192

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	if err := writeHeader(w, sampleRate, len(samples)); err != nil {
		return err
	}

	buf := make([]byte, 0, min(len(samples), chunkSamples)*bytesPerFrame)
	for len(samples) > 0 {
		n := min(len(samples), chunkSamples)
		if err := writeSamples(w, buf, samples[:n]); err != nil {
			return err
		}
		samples = samples[n:]
	}

	return nil
}

// SampleReader is a pull source of 16-bit PCM. ReadSamples returns io.EOF
// once the stream is drained, possibly together with the last samples.
type SampleReader interface {
	ReadSamples(dst []int16) (int, error)
}

// WriteWAV16Stream writes a WAV whose header announces numSamples and then
// copies the samples from src in chunks. src must yield exactly numSamples
// samples; anything else is ErrSampleCount, reported after the bytes
// already written.
func WriteWAV16Stream(w io.Writer, sampleRate, numSamples int, src SampleReader) error {
	if err := writeHeader(w, sampleRate, numSamples); err != nil {
		return err
	}

	pcm := make([]int16, min(numSamples, chunkSamples)+1)
	buf := make([]byte, 0, len(pcm)*bytesPerFrame)
	left := numSamples
	for {
		// Ask for one sample past the announced length to catch overruns.
		want := min(left, chunkSamples)
		if want == 0 {
			want = 1
		}
		n, err := src.ReadSamples(pcm[:want])
		if n > left {
			return fmt.Errorf("%w: source longer than %d samples", ErrSampleCount, numSamples)
		}
		if n > 0 {
			if werr := writeSamples(w, buf, pcm[:n]); werr != nil {
				return werr
			}
			left -= n
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if left != 0 {
		return fmt.Errorf("%w: source ended %d samples short of %d", ErrSampleCount, left, numSamples)
	}
	return nil
}

func writeHeader(w io.Writer, sampleRate, numSamples int) error {
	h, err := Header(sampleRate, numSamples)
	if err != nil {
		return err
	}
	if _, err := w.Write(h[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

func writeSamples(w io.Writer, buf []byte, samples []int16) error {
	buf = buf[:0]
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint16(buf, uint16(s))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}
	return nil
}
