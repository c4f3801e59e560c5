package validate

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPromptValid(t *testing.T) {
	content := `---
name: review
description: Review code
arguments:
  language:
    description: Language under review
---

Review the {{language}} code below.
`
	result := Prompt(writeDoc(t, "review.md", content))
	if !result.Valid() {
		t.Errorf("Valid() = false, issues: %v", result.Issues)
	}
	if len(result.Issues) != 0 {
		t.Errorf("Issues = %v, want none", result.Issues)
	}
}

func TestPromptTypoSuggestion(t *testing.T) {
	content := `---
arguments:
  language:
    description: Language under review
---

Review the {{langauge}} code.
`
	result := Prompt(writeDoc(t, "review.md", content))

	if result.Valid() {
		t.Fatal("Valid() = true, want undeclared-placeholder error")
	}
	errs := result.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() = %v, want one", errs)
	}
	msg := errs[0].Message
	if !strings.Contains(msg, "langauge") || !strings.Contains(msg, `"language"`) {
		t.Errorf("Message = %q, want both the typo and the suggestion", msg)
	}
	if errs[0].Suggestion != "language" {
		t.Errorf("Suggestion = %q, want language", errs[0].Suggestion)
	}

	// language itself is unused now, so a warning rides along.
	if !result.HasWarnings() {
		t.Error("expected an unused-argument warning")
	}
}

func TestPromptNoSuggestionWhenTooFar(t *testing.T) {
	content := `---
arguments:
  verbose:
    description: Chatty output
---

Print {{destination}} and {{verbose}}.
`
	result := Prompt(writeDoc(t, "p.md", content))

	errs := result.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() = %v, want one for destination", errs)
	}
	if errs[0].Suggestion != "" {
		t.Errorf("Suggestion = %q, want none (distance > 2)", errs[0].Suggestion)
	}
	if strings.Contains(errs[0].Message, "did you mean") {
		t.Errorf("Message = %q should not suggest anything", errs[0].Message)
	}
}

func TestPromptUnusedArgumentIsWarningOnly(t *testing.T) {
	content := `---
arguments:
  verbose:
    description: Chatty output
---

No placeholders here.
`
	result := Prompt(writeDoc(t, "p.md", content))

	if !result.Valid() {
		t.Errorf("Valid() = false, issues: %v", result.Issues)
	}
	warnings := result.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("Warnings() = %v, want one", warnings)
	}
	if !strings.Contains(warnings[0].Message, `"verbose"`) ||
		!strings.Contains(warnings[0].Message, "never used") {
		t.Errorf("Message = %q", warnings[0].Message)
	}
}

func TestPromptMissingDescriptionWarning(t *testing.T) {
	content := `---
arguments:
  topic: {}
---

About {{topic}}.
`
	result := Prompt(writeDoc(t, "p.md", content))

	if !result.Valid() {
		t.Errorf("Valid() = false, issues: %v", result.Issues)
	}
	warnings := result.Warnings()
	if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "no description") {
		t.Errorf("Warnings() = %v, want a missing-description warning", warnings)
	}
}

func TestPromptAccumulatesEverything(t *testing.T) {
	content := `---
arguments:
  language:
    description: Language
  unused:
    description: Never referenced
  bare: {}
---

{{langauge}} and {{mystery}} and {{bare}}.
`
	result := Prompt(writeDoc(t, "p.md", content))

	if result.Valid() {
		t.Fatal("Valid() = true, want errors")
	}
	// Two undeclared placeholders error; language and unused are unused
	// warnings; bare lacks a description.
	if got := len(result.Errors()); got != 2 {
		t.Errorf("Errors() = %v, want 2", result.Errors())
	}
	if got := len(result.Warnings()); got != 3 {
		t.Errorf("Warnings() = %v, want 3", result.Warnings())
	}
}

func TestPromptWithoutFrontmatter(t *testing.T) {
	result := Prompt(writeDoc(t, "p.md", "Do the thing with {{input}}.\n"))

	if result.Valid() {
		t.Fatal("Valid() = true, want undeclared-placeholder error")
	}
	if len(result.Errors()) != 1 {
		t.Errorf("Errors() = %v", result.Errors())
	}
}

func TestPromptMissingFile(t *testing.T) {
	result := Prompt(filepath.Join(t.TempDir(), "absent.md"))
	if result.Valid() {
		t.Fatal("Valid() = true for missing file")
	}
	if result.Issues[0].Field != "file" {
		t.Errorf("Field = %q, want file", result.Issues[0].Field)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"a", "", 1},
		{"", "abc", 3},
		{"language", "language", 0},
		{"langauge", "language", 2},
		{"lang", "language", 4},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
