// SPDX-License-Identifier: EPL-2.0

package payload

import (
	"io"
	"slices"
	"sync"
)

// Loader reads a complete image from r.
type Loader interface {
	Load(r io.Reader) ([]byte, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(r io.Reader) ([]byte, error)

func (f LoaderFunc) Load(r io.Reader) ([]byte, error) { return f(r) }

// Registry for loaders by format key (e.g., "bin", "hex").
type Registry struct {
	loaders map[string]Loader

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, l Loader) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.loaders[format] = l
}

func (r *Registry) Get(format string) (Loader, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	l, ok := r.loaders[format]
	return l, ok
}

// Formats lists the registered keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.loaders))
	for k := range r.loaders {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
