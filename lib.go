package ort

import (
	"fmt"
	"os"
	"runtime"
	"sync"
)

// LibraryPathEnv names the environment variable consulted for the runtime
// location when no path is passed to Load.
const LibraryPathEnv = "ORT_LIBRARY_PATH"

var (
	libMu sync.Mutex
	libs  = map[string]uintptr{}
)

func defaultLibraryPath() string {
	if p := os.Getenv(LibraryPathEnv); p != "" {
		return p
	}
	return platformLibraryName(runtime.GOOS)
}

func platformLibraryName(goos string) string {
	switch goos {
	case "linux", "freebsd":
		return "libonnxruntime.so"
	case "darwin":
		return "libonnxruntime.dylib"
	case "windows":
		return "onnxruntime.dll"
	default:
		return ""
	}
}

// loadLibrary opens path once per process and returns the cached handle on
// later calls.
func loadLibrary(path string) (uintptr, error) {
	if path == "" {
		return 0, NewError(fmt.Sprintf("unsupported OS: %s", runtime.GOOS))
	}

	libMu.Lock()
	defer libMu.Unlock()

	if h, ok := libs[path]; ok {
		return h, nil
	}
	h, err := openLibrary(path)
	if err != nil {
		return 0, WrapError(err, fmt.Sprintf("opening %s", path))
	}
	libs[path] = h
	return h, nil
}
