// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audboot/utils"
)

// Collect16 drains src into 16-bit PCM, clamping to full scale.
//
// bufferSize is the read granularity; it does not change the result.
func Collect16(src Source, bufferSize int) ([]int16, error) {
	if bufferSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBufSize, bufferSize)
	}

	var pcm16 []int16
	buf := make([]float32, bufferSize)

	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(v))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collect samples: %w", err)
		}
	}

	return pcm16, nil
}
