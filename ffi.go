package ort

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// C struct layouts

type ffiAPIBase struct {
	GetAPI           uintptr
	GetVersionString uintptr
}

// Slots in the OrtApi function table. The table is append-only across
// runtime releases so these indices are stable.
const (
	slotCreateStatus    = 0
	slotGetErrorCode    = 1
	slotGetErrorMessage = 2
	slotReleaseStatus   = 93
)

// ffiAPI holds the OrtApi entries the binding calls.
type ffiAPI struct {
	createStatusSym    uintptr
	getErrorCodeSym    uintptr
	getErrorMessageSym uintptr
	releaseStatusSym   uintptr
}

// resolveAPI calls OrtGetApiBase and reads the requested OrtApi table. It
// also returns the runtime version string.
func resolveAPI(lib uintptr, apiVersion uint32) (ffiAPI, string, error) {
	sym, err := findSymbol(lib, "OrtGetApiBase")
	if err != nil {
		return ffiAPI{}, "", WrapError(err, "resolving OrtGetApiBase")
	}

	basePtr, _, _ := purego.SyscallN(sym)
	if basePtr == 0 {
		return ffiAPI{}, "", NewError("OrtGetApiBase returned NULL")
	}
	base := (*ffiAPIBase)(unsafe.Pointer(basePtr))

	verPtr, _, _ := purego.SyscallN(base.GetVersionString)
	version := goString(verPtr)

	apiPtr, _, _ := purego.SyscallN(base.GetAPI, uintptr(apiVersion))
	if apiPtr == 0 {
		return ffiAPI{}, version, NewError(fmt.Sprintf("onnxruntime %s does not provide API version %d", version, apiVersion))
	}

	table := unsafe.Slice((*uintptr)(unsafe.Pointer(apiPtr)), slotReleaseStatus+1)
	return ffiAPI{
		createStatusSym:    table[slotCreateStatus],
		getErrorCodeSym:    table[slotGetErrorCode],
		getErrorMessageSym: table[slotGetErrorMessage],
		releaseStatusSym:   table[slotReleaseStatus],
	}, version, nil
}

func (a ffiAPI) createStatus(code ErrorCode, message string) uintptr {
	msgPtr, keepMsg := cString(message)
	defer keepMsg()

	r1, _, _ := purego.SyscallN(a.createStatusSym, uintptr(code), msgPtr)
	return r1
}

func (a ffiAPI) errorCode(status uintptr) int32 {
	r1, _, _ := purego.SyscallN(a.getErrorCodeSym, status)
	return int32(r1)
}

func (a ffiAPI) errorMessage(status uintptr) string {
	r1, _, _ := purego.SyscallN(a.getErrorMessageSym, status)
	return goString(r1)
}

func (a ffiAPI) releaseStatus(status uintptr) {
	purego.SyscallN(a.releaseStatusSym, status)
}

// convert Go string to null-terminated C string, returns pointer and a func
// that keeps the buffer alive until it is called
func cString(s string) (uintptr, func()) {
	b := append([]byte(s), 0)
	ptr := unsafe.Pointer(&b[0])
	return uintptr(ptr), func() {
		runtime.KeepAlive(b)
	}
}

// read null-terminated C string from pointer
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Pointer(ptr + uintptr(length))) != 0 {
		length++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(ptr)), length))
}
