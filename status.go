package ort

import "log/slog"

// statusAPI is the part of OrtApi that reads and frees OrtStatus values.
type statusAPI interface {
	errorCode(status uintptr) int32
	errorMessage(status uintptr) string
	releaseStatus(status uintptr)
}

// statusToError converts an OrtStatus pointer into an error and releases
// it. A NULL status means success.
func statusToError(api statusAPI, logger *slog.Logger, status uintptr) error {
	if status == 0 {
		return nil
	}
	defer api.releaseStatus(status)

	raw := api.errorCode(status)
	err := NewErrorCode(int(raw), api.errorMessage(status))
	logger.Debug("native status",
		slog.Int("raw_code", int(raw)),
		slog.String("code", err.Code().String()),
		slog.String("message", err.Message()),
	)
	return err
}
