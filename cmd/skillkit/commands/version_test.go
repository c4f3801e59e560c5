package commands

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/thoreinstein/skillkit/cmd"
)

// captureStdout captures stdout during function execution.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create a pipe
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to write end of pipe
	os.Stdout = w

	// Capture output in goroutine
	var buf bytes.Buffer
	var wg sync.WaitGroup
	wg.Go(func() {
		_, _ = io.Copy(&buf, r)
	})

	// Run the function
	fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = oldStdout

	// Wait for output capture to complete
	wg.Wait()

	return buf.String()
}

// executeVersionCommand runs the version command and captures its output.
func executeVersionCommand(t *testing.T) string {
	t.Helper()

	return captureStdout(t, func() {
		rootCmd.SetArgs([]string{"version"})
		err := rootCmd.Execute()
		if err != nil {
			// Can't use t.Fatalf inside goroutine-adjacent code
			panic("version command failed: " + err.Error())
		}
	})
}

func TestVersionCommand_OutputFormat(t *testing.T) {
	output := executeVersionCommand(t)

	tests := []struct {
		name     string
		contains string
	}{
		{
			name:     "contains version header",
			contains: "skillkit version",
		},
		{
			name:     "contains commit field",
			contains: "commit:",
		},
		{
			name:     "contains built field",
			contains: "built:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(output, tt.contains) {
				t.Errorf("version output missing %q\nGot:\n%s", tt.contains, output)
			}
		})
	}
}

func TestVersionCommand_DefaultValues(t *testing.T) {
	output := executeVersionCommand(t)

	tests := []struct {
		name     string
		contains string
	}{
		{
			name:     "version shows current value",
			contains: "skillkit version " + cmd.Version,
		},
		{
			name:     "commit shows current value",
			contains: "commit: " + cmd.Commit,
		},
		{
			name:     "date shows current value",
			contains: "built:  " + cmd.Date,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(output, tt.contains) {
				t.Errorf("version output should contain %q\nGot:\n%s", tt.contains, output)
			}
		})
	}
}

func TestVersionCommand_VersionFlag(t *testing.T) {
	output := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"--version"})
		if err := rootCmd.Execute(); err != nil {
			panic("--version failed: " + err.Error())
		}
	})

	want := "skillkit version " + cmd.Version
	if !strings.Contains(output, want) {
		t.Errorf("--version output should contain %q\nGot:\n%s", want, output)
	}
}

// TestVersionCommand_CommandMetadata verifies the command's metadata is set correctly.
func TestVersionCommand_CommandMetadata(t *testing.T) {
	if versionCmd.Use != "version" {
		t.Errorf("versionCmd.Use = %q, want %q", versionCmd.Use, "version")
	}

	if versionCmd.Short == "" {
		t.Error("versionCmd.Short should not be empty")
	}

	if versionCmd.Long == "" {
		t.Error("versionCmd.Long should not be empty")
	}
}
