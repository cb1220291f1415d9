package ort

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrorCode mirrors OrtErrorCode from onnxruntime_c_api.h, plus ErrUnknown
// for failures detected on the Go side of the binding.
//
// ErrorCode implements error the same way syscall.Errno does, so a caller can
// test a returned error with errors.Is(err, ort.ErrNoSuchFile).
type ErrorCode int32

const (
	ErrUnknown          ErrorCode = -1
	ErrOK               ErrorCode = 0
	ErrFail             ErrorCode = 1
	ErrInvalidArgument  ErrorCode = 2
	ErrNoSuchFile       ErrorCode = 3
	ErrNoModel          ErrorCode = 4
	ErrEngineError      ErrorCode = 5
	ErrRuntimeException ErrorCode = 6
	ErrInvalidProtobuf  ErrorCode = 7
	ErrModelLoaded      ErrorCode = 8
	ErrNotImplemented   ErrorCode = 9
	ErrInvalidGraph     ErrorCode = 10
	ErrEPFail           ErrorCode = 11
)

// indexed by native value
var nativeCodes = [...]ErrorCode{
	ErrOK,
	ErrFail,
	ErrInvalidArgument,
	ErrNoSuchFile,
	ErrNoModel,
	ErrEngineError,
	ErrRuntimeException,
	ErrInvalidProtobuf,
	ErrModelLoaded,
	ErrNotImplemented,
	ErrInvalidGraph,
	ErrEPFail,
}

var codeNames = map[ErrorCode]string{
	ErrUnknown:          "ORT_GO_UNKNOWN",
	ErrOK:               "ORT_OK",
	ErrFail:             "ORT_FAIL",
	ErrInvalidArgument:  "ORT_INVALID_ARGUMENT",
	ErrNoSuchFile:       "ORT_NO_SUCHFILE",
	ErrNoModel:          "ORT_NO_MODEL",
	ErrEngineError:      "ORT_ENGINE_ERROR",
	ErrRuntimeException: "ORT_RUNTIME_EXCEPTION",
	ErrInvalidProtobuf:  "ORT_INVALID_PROTOBUF",
	ErrModelLoaded:      "ORT_MODEL_LOADED",
	ErrNotImplemented:   "ORT_NOT_IMPLEMENTED",
	ErrInvalidGraph:     "ORT_INVALID_GRAPH",
	ErrEPFail:           "ORT_EP_FAIL",
}

var codeDescriptions = map[ErrorCode]string{
	ErrUnknown:          "error detected by the Go binding",
	ErrOK:               "success",
	ErrFail:             "generic failure",
	ErrInvalidArgument:  "invalid argument",
	ErrNoSuchFile:       "file not found",
	ErrNoModel:          "no model loaded",
	ErrEngineError:      "engine error",
	ErrRuntimeException: "runtime exception",
	ErrInvalidProtobuf:  "invalid serialized model data",
	ErrModelLoaded:      "model already loaded",
	ErrNotImplemented:   "not implemented",
	ErrInvalidGraph:     "invalid graph",
	ErrEPFail:           "execution provider failure",
}

// FromCode maps a native status value to its ErrorCode. Values outside the
// range defined by the runtime map to ErrUnknown.
func FromCode(code int) ErrorCode {
	if code >= 0 && code < len(nativeCodes) {
		return nativeCodes[code]
	}
	return ErrUnknown
}

// Codes returns every ErrorCode in numeric order.
func Codes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(nativeCodes)+1)
	codes = append(codes, ErrUnknown)
	return append(codes, nativeCodes[:]...)
}

// ParseErrorCode accepts a numeric value, an ORT_* name, or a name without
// the ORT_ prefix. Case is ignored for names.
func ParseErrorCode(s string) (ErrorCode, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return FromCode(n), nil
	}
	name := strings.ToUpper(s)
	if !strings.HasPrefix(name, "ORT_") {
		name = "ORT_" + name
	}
	for code, n := range codeNames {
		if n == name {
			return code, nil
		}
	}
	return ErrUnknown, NewError(fmt.Sprintf("unknown error code %q", s))
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

func (c ErrorCode) Error() string {
	return c.String()
}

// Value returns the numeric value shared with the native runtime.
func (c ErrorCode) Value() int32 {
	return int32(c)
}

// Description returns a short human readable description of the code.
func (c ErrorCode) Description() string {
	if d, ok := codeDescriptions[c]; ok {
		return d
	}
	return "unrecognized code"
}

// IsNative reports whether the code can be produced by the native runtime.
func (c ErrorCode) IsNative() bool {
	return c >= 0 && int(c) < len(nativeCodes)
}

// Error is an error raised by ONNX Runtime or by the binding itself.
type Error struct {
	code     ErrorCode
	message  string
	rendered string
	err      error
}

// NewError creates an Error for a failure detected on the Go side. The
// message is used as is.
func NewError(message string) *Error {
	return &Error{
		code:     ErrUnknown,
		message:  message,
		rendered: message,
	}
}

// WrapError is NewError with an underlying cause.
func WrapError(err error, message string) *Error {
	e := NewError(message)
	if err != nil {
		e.err = err
		e.rendered = message + ": " + err.Error()
	}
	return e
}

// NewErrorCode creates an Error from a raw status value returned by the
// native runtime.
func NewErrorCode(code int, message string) *Error {
	return NewErrorWithCode(FromCode(code), message)
}

// NewErrorWithCode creates an Error carrying code. Values that are not part
// of ErrorCode are recorded as ErrUnknown.
func NewErrorWithCode(code ErrorCode, message string) *Error {
	if !code.IsNative() {
		code = ErrUnknown
	}
	return &Error{
		code:     code,
		message:  message,
		rendered: "Error code - " + code.String() + " - message: " + message,
	}
}

func (e *Error) Error() string {
	return e.rendered
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

// Message returns the message without the code prefix.
func (e *Error) Message() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is matches an ErrorCode target against the error's code.
func (e *Error) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.code
}

// CodeOf returns the code carried by err's chain. It returns ErrOK for a nil
// error and ErrUnknown when the chain carries no code.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	return ErrUnknown
}
