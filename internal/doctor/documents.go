package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/skillkit/internal/validate"
)

// DocumentsCheck validates every skill and prompt under the given roots.
// It applies the same discovery rules as the library index: skill
// directories starting with "_" are drafts and skipped, directories
// without a SKILL.md are ignored, prompts must be .md files.
type DocumentsCheck struct {
	roots []string
}

var _ Check = (*DocumentsCheck)(nil)

// NewDocumentsCheck creates a validation sweep over the existing roots,
// in priority order.
func NewDocumentsCheck(roots []string) *DocumentsCheck {
	return &DocumentsCheck{roots: roots}
}

// Name returns the unique identifier for this check.
func (c *DocumentsCheck) Name() string {
	return "document-validation"
}

// Category returns the grouping for this check.
func (c *DocumentsCheck) Category() string {
	return "documents"
}

// Run executes the validation sweep.
func (c *DocumentsCheck) Run(_ context.Context) *CheckResult {
	var scanned, invalid, warned, drafts int
	var failures []map[string]any

	record := func(result *validate.Result) {
		scanned++
		switch {
		case result.HasErrors():
			invalid++
			problems := make([]string, 0, len(result.Errors()))
			for _, issue := range result.Errors() {
				problems = append(problems, issue.Message)
			}
			failures = append(failures, map[string]any{
				"path":     result.Path,
				"problems": problems,
			})
		case result.HasWarnings():
			warned++
		}
	}

	for _, root := range c.roots {
		skillsDir := filepath.Join(root, "skills")
		if entries, err := os.ReadDir(skillsDir); err == nil {
			for _, entry := range entries {
				if !entry.IsDir() {
					continue
				}
				if strings.HasPrefix(entry.Name(), "_") {
					drafts++
					continue
				}
				path := filepath.Join(skillsDir, entry.Name(), "SKILL.md")
				if _, err := os.Stat(path); err != nil {
					continue
				}
				record(validate.Skill(path))
			}
		}

		promptsDir := filepath.Join(root, "prompts")
		if entries, err := os.ReadDir(promptsDir); err == nil {
			for _, entry := range entries {
				name := entry.Name()
				if entry.IsDir() || filepath.Ext(name) != ".md" || strings.TrimSuffix(name, ".md") == "" {
					continue
				}
				record(validate.Prompt(filepath.Join(promptsDir, name)))
			}
		}
	}

	details := map[string]any{
		"scanned":        scanned,
		"invalid":        invalid,
		"warnings":       warned,
		"skipped_drafts": drafts,
	}
	if len(failures) > 0 {
		details["failures"] = failures
	}

	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  details,
	}

	switch {
	case scanned == 0:
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("no documents found under %d root(s)", len(c.roots))
	case invalid > 0:
		result.Status = SeverityError
		result.Message = fmt.Sprintf("%d of %d document(s) fail validation", invalid, scanned)
		result.FixHint = "run skillkit skill validate <path> on each failing document"
	case warned > 0:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d of %d document(s) have warnings", warned, scanned)
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("all %d document(s) are valid", scanned)
	}

	return result
}
