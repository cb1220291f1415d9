// Package ort maps ONNX Runtime status codes to Go errors and loads the
// runtime's C API without cgo so native statuses can be converted directly.
package ort
