// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/audboot/formats/wav"
)

func ExampleWriteWAV16() {
	buf := new(bytes.Buffer)
	if err := wav.WriteWAV16(buf, 48000, []int16{0, 23170, 32767, 23170}); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%d bytes, %q\n", buf.Len(), buf.Bytes()[:4])

	rate, samples, err := wav.ReadWAV16(buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(rate, samples)
	// Output:
	// 52 bytes, "RIFF"
	// 48000 [0 23170 32767 23170]
}
