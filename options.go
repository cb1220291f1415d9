package ort

import "log/slog"

// DefaultAPIVersion is the OrtApi version requested when none is given.
// Any runtime from 1.16 onwards serves it.
const DefaultAPIVersion uint32 = 16

type options struct {
	libraryPath string
	apiVersion  uint32
	logger      *slog.Logger
}

type Option func(*options)

// WithLibraryPath loads the runtime from path instead of the default
// location.
func WithLibraryPath(path string) Option {
	return func(o *options) {
		o.libraryPath = path
	}
}

func WithAPIVersion(version uint32) Option {
	return func(o *options) {
		o.apiVersion = version
	}
}

// WithLogger sets the logger used for debug output. The binding is silent
// by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts []Option) options {
	o := options{
		apiVersion: DefaultAPIVersion,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.libraryPath == "" {
		o.libraryPath = defaultLibraryPath()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
