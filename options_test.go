package ort

import (
	"log/slog"
	"testing"
)

func TestApplyOptionsDefaults(t *testing.T) {
	t.Setenv(LibraryPathEnv, "")

	o := applyOptions(nil)
	if o.apiVersion != DefaultAPIVersion {
		t.Fatalf("expected api version %d, got %d", DefaultAPIVersion, o.apiVersion)
	}
	if o.logger == nil {
		t.Fatalf("expected a default logger")
	}
	if o.libraryPath != defaultLibraryPath() {
		t.Fatalf("unexpected library path %q", o.libraryPath)
	}
}

func TestApplyOptionsOverrides(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	o := applyOptions([]Option{
		WithLibraryPath("/opt/ort/lib/libonnxruntime.so.1.20.0"),
		WithAPIVersion(20),
		WithLogger(logger),
	})
	if o.libraryPath != "/opt/ort/lib/libonnxruntime.so.1.20.0" {
		t.Fatalf("unexpected library path %q", o.libraryPath)
	}
	if o.apiVersion != 20 {
		t.Fatalf("unexpected api version %d", o.apiVersion)
	}
	if o.logger != logger {
		t.Fatalf("logger not applied")
	}
}

func TestDefaultLibraryPathFromEnv(t *testing.T) {
	t.Setenv(LibraryPathEnv, "/custom/libonnxruntime.so")
	if got := defaultLibraryPath(); got != "/custom/libonnxruntime.so" {
		t.Fatalf("expected env path, got %q", got)
	}
}

func TestPlatformLibraryName(t *testing.T) {
	cases := map[string]string{
		"linux":   "libonnxruntime.so",
		"darwin":  "libonnxruntime.dylib",
		"windows": "onnxruntime.dll",
		"plan9":   "",
	}
	for goos, want := range cases {
		if got := platformLibraryName(goos); got != want {
			t.Fatalf("platformLibraryName(%q) = %q, want %q", goos, got, want)
		}
	}
}

func TestLoadLibraryUnsupportedPlatform(t *testing.T) {
	_, err := loadLibrary("")
	if err == nil {
		t.Fatalf("expected error for empty path")
	}
	if CodeOf(err) != ErrUnknown {
		t.Fatalf("expected host-side error, got %v", CodeOf(err))
	}
}
