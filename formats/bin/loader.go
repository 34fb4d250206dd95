// SPDX-License-Identifier: EPL-2.0

package bin

import (
	"fmt"
	"io"
)

// Loader reads the whole stream verbatim.
type Loader struct{}

func (Loader) Load(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read binary image: %w", err)
	}
	return data, nil
}
