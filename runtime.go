package ort

import (
	"fmt"
	"log/slog"
)

// Runtime is a loaded ONNX Runtime library. It is safe for concurrent use;
// it holds no mutable state after Load returns.
type Runtime struct {
	api     ffiAPI
	version string
	path    string
	logger  *slog.Logger
}

// Load opens the ONNX Runtime shared library and resolves its C API.
// The library is looked up in this order: WithLibraryPath, the
// ORT_LIBRARY_PATH environment variable, the platform default name.
// A library stays loaded for the life of the process.
func Load(opts ...Option) (*Runtime, error) {
	o := applyOptions(opts)
	logger := o.logger.With("component", "ort")

	logger.Debug("loading onnxruntime",
		slog.String("path", o.libraryPath),
		slog.Uint64("api_version", uint64(o.apiVersion)),
	)

	lib, err := loadLibrary(o.libraryPath)
	if err != nil {
		return nil, err
	}

	api, version, err := resolveAPI(lib, o.apiVersion)
	if err != nil {
		return nil, fmt.Errorf("initializing onnxruntime: %w", err)
	}

	logger.Debug("onnxruntime loaded", slog.String("version", version))
	return &Runtime{
		api:     api,
		version: version,
		path:    o.libraryPath,
		logger:  logger,
	}, nil
}

// Version returns the version string reported by the runtime.
func (r *Runtime) Version() string {
	return r.version
}

// Path returns the location the library was loaded from.
func (r *Runtime) Path() string {
	return r.path
}

// CheckStatus converts an OrtStatus pointer returned by a C API call into an
// error and releases the status. It returns nil for a NULL status.
func (r *Runtime) CheckStatus(status uintptr) error {
	return statusToError(r.api, r.logger, status)
}

// NewStatus creates a native OrtStatus. The caller owns the result and must
// hand it to CheckStatus or ReleaseStatus.
func (r *Runtime) NewStatus(code ErrorCode, message string) uintptr {
	return r.api.createStatus(code, message)
}

// ReleaseStatus frees a native OrtStatus. NULL is ignored.
func (r *Runtime) ReleaseStatus(status uintptr) {
	if status == 0 {
		return
	}
	r.api.releaseStatus(status)
}
