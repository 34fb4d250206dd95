// SPDX-License-Identifier: EPL-2.0

package bin

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/ik5/audboot/internal/audiotest"
)

func TestLoader_Verbatim(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 10000} {
		data := audiotest.Payload(n, 1)
		got, err := Loader{}.Load(iotest.OneByteReader(bytes.NewReader(data)))
		if err != nil {
			t.Fatalf("n=%d: Load() error = %v", n, err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("n=%d: Load() altered the image", n)
		}
	}
}

func TestLoader_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	if _, err := (Loader{}).Load(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Errorf("Load() error = %v, want wrapped %v", err, boom)
	}
}
