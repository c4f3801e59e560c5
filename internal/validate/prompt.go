package validate

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/skillkit/internal/render"
	"github.com/thoreinstein/skillkit/pkg/fileutil"
	"github.com/thoreinstein/skillkit/pkg/frontmatter"
)

// maxTypoDistance is how far a placeholder may be from a declared argument
// name before the typo suggestion is withheld.
const maxTypoDistance = 2

// Prompt checks one prompt document. Unlike Skill, nothing short-circuits:
// frontmatter parses permissively and every finding is accumulated, so a
// single run reports the complete picture. Placeholders without a declared
// argument are errors; declared arguments that are unused or lack a
// description are warnings.
func Prompt(path string) *Result {
	result := &Result{Path: path}

	content, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		result.AddError("file", fmt.Sprintf("cannot read prompt file: %v", err), nil)
		return result
	}

	matter, rawBody, _ := frontmatter.Split(content)
	body := strings.TrimSpace(string(rawBody))

	declared := render.DeclaredArgs(matter)
	placeholders := render.Placeholders(body)

	declaredNames := declared.Names()
	for _, ph := range placeholders {
		if declared.Has(ph) {
			continue
		}
		if match, ok := closestName(ph, declaredNames); ok {
			result.Issues = append(result.Issues, Issue{
				Severity:   SeverityError,
				Field:      "arguments",
				Message:    fmt.Sprintf("placeholder {{%s}} has no declared argument (did you mean %q?)", ph, match),
				Suggestion: match,
			})
			continue
		}
		result.AddError("arguments",
			fmt.Sprintf("placeholder {{%s}} has no declared argument", ph), nil)
	}

	used := make(map[string]bool, len(placeholders))
	for _, ph := range placeholders {
		used[ph] = true
	}
	for _, p := range declared {
		if !used[p.Name] {
			result.AddWarning("arguments",
				fmt.Sprintf("argument %q is declared but never used", p.Name), nil)
		}
		if p.Description == "" {
			result.AddWarning("arguments",
				fmt.Sprintf("argument %q has no description", p.Name), nil)
		}
	}

	return result
}

// closestName returns the declared name nearest to name when the edit
// distance is within maxTypoDistance. Ties keep the earlier declaration.
func closestName(name string, declared []string) (string, bool) {
	best, bestDist := "", maxTypoDistance+1
	for _, cand := range declared {
		if d := levenshtein(name, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best, bestDist <= maxTypoDistance
}

// levenshtein computes edit distance with the classic two-row dynamic
// program over runes.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
