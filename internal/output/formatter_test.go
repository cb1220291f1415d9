package output_test

import (
	"strings"
	"testing"

	"github.com/olafurjohannsson/ort-go/internal/output"
)

type row struct {
	Code int32  `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

func TestNewFormatterRejectsUnknown(t *testing.T) {
	if _, err := output.NewFormatter("xml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	for _, f := range []string{"", "TABLE", "json", "Yaml"} {
		if _, err := output.NewFormatter(f); err != nil {
			t.Fatalf("NewFormatter(%q): %v", f, err)
		}
	}
}

func TestTableFormatter(t *testing.T) {
	f, _ := output.NewFormatter("table")
	out, err := f.Format([]row{{2, "ORT_INVALID_ARGUMENT"}, {11, "ORT_EP_FAIL"}})
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "CODE") || !strings.Contains(lines[0], "NAME") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[2], "ORT_EP_FAIL") {
		t.Fatalf("unexpected row %q", lines[2])
	}

	empty, _ := f.Format([]row{})
	if empty != "No results.\n" {
		t.Fatalf("unexpected empty output %q", empty)
	}

	single, _ := f.Format(row{5, "ORT_ENGINE_ERROR"})
	if !strings.Contains(single, "Name:") || !strings.Contains(single, "ORT_ENGINE_ERROR") {
		t.Fatalf("unexpected struct output %q", single)
	}
}

func TestJSONAndYAMLFormatters(t *testing.T) {
	data := []row{{4, "ORT_NO_MODEL"}}

	j, _ := output.NewFormatter("json")
	out, err := j.Format(data)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(out, `"name": "ORT_NO_MODEL"`) {
		t.Fatalf("unexpected json %q", out)
	}

	y, _ := output.NewFormatter("yaml")
	out, err = y.Format(data)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.Contains(out, "name: ORT_NO_MODEL") || !strings.Contains(out, "code: 4") {
		t.Fatalf("unexpected yaml %q", out)
	}
}
