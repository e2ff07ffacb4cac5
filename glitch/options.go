// SPDX-License-Identifier: EPL-2.0

package glitch

import (
	"io"
	"log/slog"
)

type options struct {
	seed   uint64
	seeded bool
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithSeed fixes the random seed so Process is reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithLogger sets the logger for debug output. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(opts ...Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
