package ort_test

import (
	"errors"
	"os"
	"testing"

	ort "github.com/olafurjohannsson/ort-go"
)

// loadNative loads the runtime named by ORT_LIBRARY_PATH and skips the test
// when it is not set.
func loadNative(t *testing.T, opts ...ort.Option) (*ort.Runtime, error) {
	t.Helper()
	if os.Getenv(ort.LibraryPathEnv) == "" {
		t.Skipf("%s not set", ort.LibraryPathEnv)
	}
	return ort.Load(opts...)
}

func TestLoadReportsVersion(t *testing.T) {
	rt, err := loadNative(t)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rt.Version() == "" {
		t.Fatalf("expected a version string")
	}
	if rt.Path() != os.Getenv(ort.LibraryPathEnv) {
		t.Fatalf("unexpected path %q", rt.Path())
	}
}

func TestNativeStatusRoundTrip(t *testing.T) {
	rt, err := loadNative(t)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	status := rt.NewStatus(ort.ErrInvalidGraph, "g")
	if status == 0 {
		t.Fatalf("CreateStatus returned NULL")
	}
	err = rt.CheckStatus(status)
	if !errors.Is(err, ort.ErrInvalidGraph) {
		t.Fatalf("expected ErrInvalidGraph, got %v", err)
	}
	var ortErr *ort.Error
	if !errors.As(err, &ortErr) || ortErr.Message() != "g" {
		t.Fatalf("unexpected error %v", err)
	}
	if err.Error() != "Error code - ORT_INVALID_GRAPH - message: g" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	for _, code := range ort.Codes() {
		if !code.IsNative() || code == ort.ErrOK {
			continue
		}
		err := rt.CheckStatus(rt.NewStatus(code, code.Description()))
		if ort.CodeOf(err) != code {
			t.Fatalf("round trip of %v returned %v", code, ort.CodeOf(err))
		}
		if err.(*ort.Error).Message() != code.Description() {
			t.Fatalf("round trip of %v lost the message: %q", code, err.(*ort.Error).Message())
		}
	}

	// freeing without converting goes through the ReleaseStatus slot
	rt.ReleaseStatus(rt.NewStatus(ort.ErrFail, "discarded"))
}

func TestLoadUnsupportedAPIVersion(t *testing.T) {
	_, err := loadNative(t, ort.WithAPIVersion(1<<20))
	if err == nil {
		t.Fatalf("expected error for unsupported API version")
	}
	if ort.CodeOf(err) != ort.ErrUnknown {
		t.Fatalf("expected host-side error, got %v", ort.CodeOf(err))
	}
}

func TestLoadMissingLibrary(t *testing.T) {
	if os.Getenv(ort.LibraryPathEnv) == "" {
		t.Skipf("%s not set", ort.LibraryPathEnv)
	}
	_, err := ort.Load(ort.WithLibraryPath(os.Getenv(ort.LibraryPathEnv) + ".missing"))
	if err == nil {
		t.Fatalf("expected error for missing library")
	}
	if ort.CodeOf(err) != ort.ErrUnknown {
		t.Fatalf("expected host-side error, got %v", ort.CodeOf(err))
	}
}
