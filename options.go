// SPDX-License-Identifier: EPL-2.0

package audboot

import (
	"github.com/ik5/audboot/formats/bin"
	"github.com/ik5/audboot/formats/ihex"
	"github.com/ik5/audboot/log"
	"github.com/ik5/audboot/payload"
)

// Option configures Encode, Load and Run.
type Option func(*options)

type options struct {
	logger   log.Logger
	registry *payload.Registry
}

func newOptions(opts []Option) *options {
	o := &options{logger: log.NewNoopLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegistry replaces the payload loaders. The default registry knows
// "bin" and "hex".
func WithRegistry(r *payload.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// NewRegistry returns a registry with the bundled loaders. Holes in
// Intel-HEX images are filled with fill. logger may be nil.
func NewRegistry(fill byte, logger log.Logger) *payload.Registry {
	r := payload.NewRegistry()
	r.Register("bin", bin.Loader{})
	r.Register("hex", ihex.NewLoader(fill, logger))
	return r
}
