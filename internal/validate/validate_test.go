package validate

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{Severity(99), "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.s.String(); got != tt.want {
				t.Errorf("Severity.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIssueError(t *testing.T) {
	tests := []struct {
		name string
		i    Issue
		want string
	}{
		{
			name: "error with field and value",
			i: Issue{
				Severity: SeverityError,
				Field:    "name",
				Message:  "must be lowercase",
				Value:    "Bad",
			},
			want: "error: field \"name\": must be lowercase (got Bad)",
		},
		{
			name: "warning without field",
			i: Issue{
				Severity: SeverityWarning,
				Message:  "recommended description",
			},
			want: "warning: recommended description",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.i.Error(); got != tt.want {
				t.Errorf("Issue.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResultHelpers(t *testing.T) {
	r := &Result{}

	if r.HasErrors() {
		t.Error("expected no errors")
	}
	if !r.Valid() {
		t.Error("empty result should be valid")
	}

	r.AddWarning("f1", "m1", nil)
	if !r.Valid() {
		t.Error("warnings must not affect validity")
	}
	if !r.HasWarnings() || len(r.Warnings()) != 1 {
		t.Errorf("Warnings() = %v", r.Warnings())
	}

	r.AddError("f2", "m2", "v2")
	if r.Valid() {
		t.Error("errors must invalidate the result")
	}
	if !r.HasErrors() || len(r.Errors()) != 1 {
		t.Errorf("Errors() = %v", r.Errors())
	}
}

func TestResultNilSafety(t *testing.T) {
	var r *Result
	if r.HasErrors() {
		t.Error("expected no errors for nil result")
	}
	if r.HasWarnings() {
		t.Error("expected no warnings for nil result")
	}
	if !r.Valid() {
		t.Error("nil result should count as valid")
	}
	if r.Errors() != nil || r.Warnings() != nil {
		t.Error("expected nil slices for nil result")
	}
}

func TestResultMarshalJSON(t *testing.T) {
	r := &Result{Path: "SKILL.md"}
	r.AddError("name", "is required", nil)
	r.AddWarning("arguments", `argument "x" has no description`, nil)

	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(out)

	for _, want := range []string{
		`"valid":false`,
		`"path":"SKILL.md"`,
		`"severity":"error"`,
		`"severity":"warning"`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
}
