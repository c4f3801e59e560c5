package skill

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestListSkillsTabular(t *testing.T) {
	tests := []struct {
		name         string
		skills       map[string]string
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "empty library points at source sync",
			wantContains: []string{"No skills available.", "skillkit source sync"},
			wantAbsent:   []string{"NAME"},
		},
		{
			name: "rows keyed by directory name",
			skills: map[string]string{
				"code-review": skillDoc("code-review", "Reviews code"),
				"deploy":      skillDoc("deploy", "Ships a release"),
			},
			wantContains: []string{
				"NAME", "DESCRIPTION",
				"code-review", "Reviews code",
				"deploy", "Ships a release",
			},
		},
		{
			name: "long descriptions are shortened",
			skills: map[string]string{
				"wide": skillDoc("wide", strings.Repeat("x", 120)),
			},
			wantContains: []string{strings.Repeat("x", 77) + "..."},
			wantAbsent:   []string{strings.Repeat("x", 78)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			for name, content := range tt.skills {
				writeSkill(t, root, name, content)
			}

			var buf bytes.Buffer
			if err := listSkills(&buf, testLibrary(t, root)); err != nil {
				t.Fatalf("listSkills() error = %v", err)
			}
			output := buf.String()

			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing expected content %q\noutput: %s", want, output)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(output, absent) {
					t.Errorf("output should not contain %q\noutput: %s", absent, output)
				}
			}
		})
	}
}

func TestListSkillsJSON(t *testing.T) {
	root := t.TempDir()
	writeSkill(t, root, "deploy", skillDoc("Deploy Helper", "Ships a release"))
	writeSkill(t, root, "plain", skillDoc("plain", "No alias"))

	listJSON = true
	t.Cleanup(func() { listJSON = false })

	var buf bytes.Buffer
	if err := listSkills(&buf, testLibrary(t, root)); err != nil {
		t.Fatalf("listSkills() error = %v", err)
	}

	var rows []infoJSON
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatalf("invalid JSON: %v\noutput: %s", err, buf.String())
	}

	// The name field is always the addressable directory name; the
	// frontmatter alias rides along as display_name when it differs.
	want := []infoJSON{
		{Name: "deploy", DisplayName: "Deploy Helper", Description: "Ships a release"},
		{Name: "plain", Description: "No alias"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %+v, want %+v", rows, want)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "short string unchanged", input: "hello", maxLen: 10, want: "hello"},
		{name: "exact length unchanged", input: "hello", maxLen: 5, want: "hello"},
		{name: "long string truncated", input: "hello world", maxLen: 8, want: "hello..."},
		{name: "multibyte runes counted once", input: "héllo wörld", maxLen: 8, want: "héllo..."},
		{name: "tiny limit has no ellipsis", input: "hello", maxLen: 2, want: "he"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}
