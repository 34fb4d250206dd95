// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audboot/audio"
	"github.com/ik5/audboot/utils"
)

const defaultBufSize = 4096

type wavSource struct {
	sampleRate int
	samples    []int16
	pos        int
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return 1 }
func (s *wavSource) BufSize() int    { return defaultBufSize }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}

	n := min(len(dst), len(s.samples)-s.pos)
	for i, v := range s.samples[s.pos : s.pos+n] {
		dst[i] = utils.Int16ToFloat32(v)
	}
	s.pos += n

	return n, nil
}

// Decoder reads mono 16-bit PCM WAV files.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	sampleRate, samples, err := ReadWAV16(r)
	if err != nil {
		return nil, err
	}
	return &wavSource{sampleRate: sampleRate, samples: samples}, nil
}

// ReadWAV16 decodes a whole mono 16-bit PCM file.
func ReadWAV16(r io.Reader) (int, []int16, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return 0, nil, fmt.Errorf("read WAV: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	d := gowav.NewDecoder(rs)
	if !d.IsValidFile() {
		return 0, nil, ErrNotWavFile
	}
	if d.WavAudioFormat != formatPCM || d.BitDepth != bitsPerSample {
		return 0, nil, fmt.Errorf("%w: format %d, %d bits", ErrOnlyPCM16bitSupported, d.WavAudioFormat, d.BitDepth)
	}
	if d.NumChans != 1 {
		return 0, nil, fmt.Errorf("%w: %d channels", ErrUnsupportedWavLayout, d.NumChans)
	}

	buf, err := d.FullPCMBuffer()
	if err != nil {
		return 0, nil, fmt.Errorf("decode WAV: %w", err)
	}

	return int(d.SampleRate), toInt16(buf), nil
}

func toInt16(buf *goaudio.IntBuffer) []int16 {
	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}
	return samples
}
