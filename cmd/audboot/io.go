// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ik5/audboot/internal/cliconfig"
)

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == cliconfig.StdStream {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// lazyOutput creates its file on the first write, so a failed run leaves no
// file behind.
type lazyOutput struct {
	path   string
	stdout io.Writer
	w      io.Writer
	file   *os.File
}

func newLazyOutput(path string, stdout io.Writer) *lazyOutput {
	return &lazyOutput{path: path, stdout: stdout}
}

func (o *lazyOutput) Write(p []byte) (int, error) {
	if o.w == nil {
		if o.path == cliconfig.StdStream {
			o.w = o.stdout
		} else {
			f, err := os.Create(o.path)
			if err != nil {
				return 0, fmt.Errorf("create output: %w", err)
			}
			o.file, o.w = f, f
		}
	}
	return o.w.Write(p)
}

func (o *lazyOutput) Close() error {
	if o.file == nil {
		return nil
	}
	return o.file.Close()
}
