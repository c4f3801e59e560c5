package prompt

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/skillkit/internal/errors"
)

// writePromptFile writes a standalone prompt file and returns its path.
func writePromptFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidatePath(t *testing.T) {
	t.Run("clean prompt passes", func(t *testing.T) {
		path := writePromptFile(t, `---
description: Sums up
arguments:
  topic:
    description: What to summarize
---

Summarize {{topic}}.
`)

		var buf bytes.Buffer
		if err := validatePath(&buf, path); err != nil {
			t.Fatalf("validatePath() error = %v", err)
		}
		if !strings.Contains(buf.String(), "is valid") {
			t.Errorf("output = %q, want a valid verdict", buf.String())
		}
	})

	t.Run("undeclared placeholder fails", func(t *testing.T) {
		path := writePromptFile(t, "Summarize {{topic}}.\n")

		var buf bytes.Buffer
		err := validatePath(&buf, path)

		var exitErr *errors.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("error = %v, want ExitError", err)
		}
		if exitErr.Code != errors.ExitUser {
			t.Errorf("Code = %d, want %d", exitErr.Code, errors.ExitUser)
		}

		output := buf.String()
		for _, want := range []string{"invalid", "{{topic}}", "no declared argument"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing expected content %q\noutput: %s", want, output)
			}
		}
	})

	t.Run("warnings alone keep exit code zero", func(t *testing.T) {
		path := writePromptFile(t, `---
arguments:
  unused:
    description: Never referenced
---

No placeholders here.
`)

		var buf bytes.Buffer
		if err := validatePath(&buf, path); err != nil {
			t.Fatalf("validatePath() error = %v, want nil for warnings", err)
		}

		output := buf.String()
		for _, want := range []string{"valid with findings", "Warnings:", "never used"} {
			if !strings.Contains(output, want) {
				t.Errorf("output missing expected content %q\noutput: %s", want, output)
			}
		}
	})

	t.Run("json format carries issues", func(t *testing.T) {
		path := writePromptFile(t, "Summarize {{topic}}.\n")

		validateJSON = true
		t.Cleanup(func() { validateJSON = false })

		var buf bytes.Buffer
		err := validatePath(&buf, path)
		if err == nil {
			t.Fatal("validatePath() should fail for an invalid prompt")
		}

		var report struct {
			Valid  bool `json:"valid"`
			Issues []struct {
				Severity string `json:"severity"`
				Message  string `json:"message"`
			} `json:"issues"`
		}
		if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
			t.Fatalf("invalid JSON: %v\noutput: %s", err, buf.String())
		}
		if report.Valid {
			t.Error("valid = true, want false")
		}
		if len(report.Issues) != 1 || report.Issues[0].Severity != "error" {
			t.Errorf("issues = %+v, want one error", report.Issues)
		}
	})
}
