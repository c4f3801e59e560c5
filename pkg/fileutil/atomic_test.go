package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{
			name: "successful write",
			data: []byte("hello world\n"),
			perm: 0644,
		},
		{
			name: "empty data",
			data: []byte{},
			perm: 0644,
		},
		{
			name: "binary data",
			data: []byte{0x00, 0x01, 0x02, 0xFF},
			perm: 0600,
		},
		{
			name: "executable permissions",
			data: []byte("#!/bin/sh\necho hello\n"),
			perm: 0755,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "test-file")

			if err := AtomicWriteFile(path, tt.data, tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			// Verify content
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading file: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			// Verify permissions
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stating file: %v", err)
			}
			if gotPerm := info.Mode().Perm(); gotPerm != tt.perm {
				t.Errorf("permissions = %o, want %o", gotPerm, tt.perm)
			}
		})
	}
}

func TestAtomicWriteFile_DirectoryNotExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent", "subdir", "file.txt")

	err := AtomicWriteFile(path, []byte("data"), 0600)
	if err == nil {
		t.Error("AtomicWriteFile() expected error for nonexistent directory")
	}
}

func TestAtomicWriteFile_OverwriteExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "existing-file")

	// Create original file
	original := []byte("original content\n")
	if err := os.WriteFile(path, original, 0600); err != nil {
		t.Fatalf("creating original file: %v", err)
	}

	// Overwrite with new content
	newContent := []byte("new content\n")
	if err := AtomicWriteFile(path, newContent, 0600); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	// Verify new content
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(got) != string(newContent) {
		t.Errorf("content = %q, want %q", got, newContent)
	}
}

func TestAtomicWriteFile_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")

	if err := AtomicWriteFile(path, []byte("data"), 0600); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading directory: %v", err)
	}

	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestAtomicWriteTOML(t *testing.T) {
	type state struct {
		URL    string `toml:"url"`
		Ref    string `toml:"ref"`
		Synced bool   `toml:"synced"`
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "state.toml")

	v := state{URL: "https://example.com/repo.git", Ref: "main", Synced: true}
	if err := AtomicWriteTOML(path, v); err != nil {
		t.Fatalf("AtomicWriteTOML() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}

	s := string(got)
	for _, want := range []string{"url = 'https://example.com/repo.git'", "ref = 'main'", "synced = true"} {
		if !strings.Contains(s, want) {
			t.Errorf("TOML output missing %q:\n%s", want, s)
		}
	}
	if !strings.HasSuffix(s, "\n") {
		t.Error("TOML output should have trailing newline")
	}
}

func TestAtomicWriteTOML_MarshalError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.toml")

	if err := AtomicWriteTOML(path, func() {}); err == nil {
		t.Fatal("AtomicWriteTOML() expected error for unmarshalable value")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("file should not exist after marshal error")
	}
}
