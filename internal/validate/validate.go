// Package validate checks skill and prompt documents for structural and
// content problems and reports them as data. Validation never throws past
// this boundary: callers receive a Result and decide what a failure means
// for them.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a blocking validation failure.
	SeverityError Severity = iota
	// SeverityWarning indicates a recommended but non-blocking issue.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its name rather than its ordinal.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Issue represents a single validation problem.
type Issue struct {
	// Severity indicates the impact of the issue.
	Severity Severity `json:"severity"`
	// Field identifies the part of the document with the issue (optional).
	Field string `json:"field,omitempty"`
	// Message is a human-readable description of the problem.
	Message string `json:"message"`
	// Value is the actual value that failed validation (optional).
	Value any `json:"value,omitempty"`
	// Suggestion names a likely intended value, set for close-miss typos.
	Suggestion string `json:"suggestion,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Field != "" {
		sb.WriteString("field \"")
		sb.WriteString(i.Field)
		sb.WriteString("\": ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result aggregates the issues found in one document.
type Result struct {
	// Path is the document that was checked.
	Path   string
	Issues []Issue
}

// Valid reports whether the document passed: warnings never affect
// validity, only errors do.
func (r *Result) Valid() bool {
	return !r.HasErrors()
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// AddError adds an error issue to the result.
func (r *Result) AddError(field, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Field:    field,
		Message:  message,
		Value:    value,
	})
}

// AddWarning adds a warning issue to the result.
func (r *Result) AddWarning(field, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Field:    field,
		Message:  message,
		Value:    value,
	})
}

// Errors returns all issues with SeverityError.
func (r *Result) Errors() []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			res = append(res, i)
		}
	}
	return res
}

// Warnings returns all issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == SeverityWarning {
			res = append(res, i)
		}
	}
	return res
}

// MarshalJSON includes the computed validity alongside the raw issues.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Valid  bool    `json:"valid"`
		Path   string  `json:"path,omitempty"`
		Issues []Issue `json:"issues,omitempty"`
	}{
		Valid:  r.Valid(),
		Path:   r.Path,
		Issues: r.Issues,
	})
}
