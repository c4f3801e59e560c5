package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

type skillMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	License     string `yaml:"license"`
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantMatter string
		wantBody   string
		wantFound  bool
	}{
		{
			name:       "complete block",
			input:      "---\nname: review\n---\nBody here.\n",
			wantMatter: "name: review\n",
			wantBody:   "Body here.\n",
			wantFound:  true,
		},
		{
			name:       "crlf line endings",
			input:      "---\r\nname: review\r\n---\r\nBody here.\r\n",
			wantMatter: "name: review\r\n",
			wantBody:   "Body here.\r\n",
			wantFound:  true,
		},
		{
			name:      "no opening delimiter",
			input:     "# Just markdown\n\nNo metadata.\n",
			wantBody:  "# Just markdown\n\nNo metadata.\n",
			wantFound: false,
		},
		{
			name:      "opening delimiter never closed",
			input:     "---\nname: review\nBody that never ends\n",
			wantBody:  "---\nname: review\nBody that never ends\n",
			wantFound: false,
		},
		{
			name:       "empty block",
			input:      "---\n---\nBody.\n",
			wantMatter: "",
			wantBody:   "Body.\n",
			wantFound:  true,
		},
		{
			name:       "closing delimiter at end of file without newline",
			input:      "---\nname: review\n---",
			wantMatter: "name: review\n",
			wantBody:   "",
			wantFound:  true,
		},
		{
			name:      "dashes inside a line are not a delimiter",
			input:     "---\nname: a --- b\n",
			wantBody:  "---\nname: a --- b\n",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matter, body, found := Split([]byte(tt.input))
			if found != tt.wantFound {
				t.Fatalf("Split() found = %v, want %v", found, tt.wantFound)
			}
			if string(matter) != tt.wantMatter {
				t.Errorf("Split() matter = %q, want %q", matter, tt.wantMatter)
			}
			if string(body) != tt.wantBody {
				t.Errorf("Split() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseMap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta map[string]any
		wantBody string
	}{
		{
			name:     "simple mapping",
			input:    "---\nname: review\ndescription: Reviews code\n---\n\nBody here.\n",
			wantMeta: map[string]any{"name": "review", "description": "Reviews code"},
			wantBody: "Body here.",
		},
		{
			name:     "no frontmatter at all",
			input:    "# Heading\n\nJust text.\n",
			wantMeta: map[string]any{},
			wantBody: "# Heading\n\nJust text.",
		},
		{
			name:     "malformed yaml degrades to empty map",
			input:    "---\nname: [unclosed\n---\nBody survives.\n",
			wantMeta: map[string]any{},
			wantBody: "Body survives.",
		},
		{
			name:     "scalar block degrades to empty map",
			input:    "---\njust a string\n---\nBody.\n",
			wantMeta: map[string]any{},
			wantBody: "Body.",
		},
		{
			name:     "list block degrades to empty map",
			input:    "---\n- a\n- b\n---\nBody.\n",
			wantMeta: map[string]any{},
			wantBody: "Body.",
		},
		{
			name:     "unclosed block treats everything as body",
			input:    "---\nname: review\nstill body\n",
			wantMeta: map[string]any{},
			wantBody: "---\nname: review\nstill body",
		},
		{
			name:     "empty block",
			input:    "---\n---\nBody.\n",
			wantMeta: map[string]any{},
			wantBody: "Body.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body := ParseMap([]byte(tt.input))
			if body != tt.wantBody {
				t.Errorf("ParseMap() body = %q, want %q", body, tt.wantBody)
			}
			if len(meta) != len(tt.wantMeta) {
				t.Fatalf("ParseMap() meta = %v, want %v", meta, tt.wantMeta)
			}
			for k, want := range tt.wantMeta {
				if got := meta[k]; got != want {
					t.Errorf("ParseMap() meta[%q] = %v, want %v", k, got, want)
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantMeta skillMeta
		wantBody string
	}{
		{
			name:  "valid skill frontmatter",
			input: "---\nname: code-review\ndescription: Reviews code\nlicense: MIT\n---\n\n# Instructions\n",
			wantMeta: skillMeta{
				Name:        "code-review",
				Description: "Reviews code",
				License:     "MIT",
			},
			wantBody: "\n# Instructions\n",
		},
		{
			name:     "no frontmatter returns full content as body",
			input:    "# Just a markdown file\n",
			wantMeta: skillMeta{},
			wantBody: "# Just a markdown file\n",
		},
		{
			name:     "empty frontmatter",
			input:    "---\n---\n\nBody content here.\n",
			wantMeta: skillMeta{},
			wantBody: "\nBody content here.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var meta skillMeta
			body, err := Parse(strings.NewReader(tt.input), &meta)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if meta != tt.wantMeta {
				t.Errorf("Parse() meta = %+v, want %+v", meta, tt.wantMeta)
			}
			if string(body) != tt.wantBody {
				t.Errorf("Parse() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	input := "---\nname: [unclosed\n---\nBody.\n"

	var meta skillMeta
	_, err := Parse(strings.NewReader(input), &meta)
	if err == nil {
		t.Fatal("Parse() should fail on malformed YAML")
	}
}

func TestMustParse(t *testing.T) {
	t.Run("missing frontmatter", func(t *testing.T) {
		var meta skillMeta
		_, err := MustParse(strings.NewReader("no delimiters here\n"), &meta)
		if !errors.Is(err, ErrMissingFrontmatter) {
			t.Errorf("MustParse() error = %v, want ErrMissingFrontmatter", err)
		}
	})

	t.Run("missing closing delimiter", func(t *testing.T) {
		var meta skillMeta
		_, err := MustParse(strings.NewReader("---\nname: x\n"), &meta)
		if !errors.Is(err, ErrMissingClosingDelimiter) {
			t.Errorf("MustParse() error = %v, want ErrMissingClosingDelimiter", err)
		}
	})

	t.Run("complete frontmatter succeeds", func(t *testing.T) {
		var meta skillMeta
		body, err := MustParse(strings.NewReader("---\nname: x\n---\nbody\n"), &meta)
		if err != nil {
			t.Fatalf("MustParse() error = %v", err)
		}
		if meta.Name != "x" {
			t.Errorf("MustParse() name = %q, want %q", meta.Name, "x")
		}
		if string(body) != "body\n" {
			t.Errorf("MustParse() body = %q, want %q", body, "body\n")
		}
	})
}

func TestParseHeader(t *testing.T) {
	input := "---\nname: review\ndescription: longer text\n---\nA very long body that should not be read.\n"

	var meta skillMeta
	if err := ParseHeader(strings.NewReader(input), &meta); err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if meta.Name != "review" {
		t.Errorf("ParseHeader() name = %q, want %q", meta.Name, "review")
	}
	if meta.Description != "longer text" {
		t.Errorf("ParseHeader() description = %q, want %q", meta.Description, "longer text")
	}
}

func TestParseHeader_NoFrontmatter(t *testing.T) {
	var meta skillMeta
	if err := ParseHeader(strings.NewReader("plain text\n"), &meta); err != nil {
		t.Fatalf("ParseHeader() error = %v", err)
	}
	if meta != (skillMeta{}) {
		t.Errorf("ParseHeader() meta = %+v, want zero value", meta)
	}
}

func TestFormat(t *testing.T) {
	meta := skillMeta{Name: "code-review", Description: "Reviews code"}

	out, err := Format(meta, "# Instructions\n")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	s := string(out)
	if !strings.HasPrefix(s, "---\n") {
		t.Errorf("Format() should start with delimiter, got: %q", s)
	}
	if !strings.Contains(s, "name: code-review") {
		t.Errorf("Format() missing name field: %q", s)
	}
	if !strings.Contains(s, "\n---\n") {
		t.Errorf("Format() missing closing delimiter: %q", s)
	}
	if !strings.HasSuffix(s, "# Instructions\n") {
		t.Errorf("Format() missing body: %q", s)
	}

	// Round-trip through Parse.
	var parsed skillMeta
	body, err := Parse(strings.NewReader(s), &parsed)
	if err != nil {
		t.Fatalf("Parse() of formatted output failed: %v", err)
	}
	if parsed != meta {
		t.Errorf("round-trip meta = %+v, want %+v", parsed, meta)
	}
	if !strings.Contains(string(body), "# Instructions") {
		t.Errorf("round-trip body = %q", body)
	}
}
