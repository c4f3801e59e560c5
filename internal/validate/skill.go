package validate

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/skillkit/pkg/fileutil"
	"github.com/thoreinstein/skillkit/pkg/frontmatter"
)

const (
	maxNameLength        = 64
	maxDescriptionLength = 1024
)

// nameRegex validates document names: lowercase alphanumeric segments with
// single hyphens between them, no leading, trailing, or doubled hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// allowedSkillKeys is the complete legal top-level key set for SKILL.md
// frontmatter.
var allowedSkillKeys = map[string]bool{
	"name":        true,
	"description": true,
	"license":     true,
}

// Skill checks one SKILL.md file. Structural checks short-circuit in layer
// order, so a file that fails early reports only that failure: readable →
// opens with a frontmatter delimiter → delimiter block closed → parses as a
// mapping → only allowed keys → name and description present. The final
// name and description content checks accumulate so both fields get
// reported in one pass.
func Skill(path string) *Result {
	result := &Result{Path: path}

	content, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		result.AddError("file", fmt.Sprintf("cannot read skill file: %v", err), nil)
		return result
	}

	firstLine, _, _ := bytes.Cut(content, []byte("\n"))
	if !bytes.Equal(bytes.TrimRight(firstLine, "\r"), []byte("---")) {
		result.AddError("frontmatter", "file must start with a --- delimiter line", nil)
		return result
	}

	matter, _, found := frontmatter.Split(content)
	if !found {
		result.AddError("frontmatter", "missing closing --- delimiter", nil)
		return result
	}

	var meta map[string]any
	if err := yaml.Unmarshal(matter, &meta); err != nil {
		result.AddError("frontmatter", fmt.Sprintf("not a valid key-value mapping: %v", err), nil)
		return result
	}

	var unknown []string
	for key := range meta {
		if !allowedSkillKeys[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		result.AddError("frontmatter", "unknown keys: "+strings.Join(unknown, ", "), nil)
		return result
	}

	name, nameProblem := requireString(meta, "name")
	desc, descProblem := requireString(meta, "description")
	if nameProblem != "" {
		result.AddError("name", nameProblem, meta["name"])
	}
	if descProblem != "" {
		result.AddError("description", descProblem, meta["description"])
	}
	if lic, ok := meta["license"]; ok {
		if _, isString := lic.(string); !isString {
			result.AddError("license", "must be a string", lic)
		}
	}
	if result.HasErrors() {
		return result
	}

	checkName(result, name)
	checkDescription(result, desc)
	return result
}

// requireString fetches a frontmatter field that must be a non-empty
// string. The returned problem is empty when the field is fine.
func requireString(meta map[string]any, key string) (value, problem string) {
	v, ok := meta[key]
	if !ok {
		return "", "is required"
	}
	s, isString := v.(string)
	if !isString {
		return "", "must be a string"
	}
	if s == "" {
		return "", "is required"
	}
	return s, ""
}

// checkName reports name pattern and length violations.
func checkName(result *Result, name string) {
	if len(name) > maxNameLength {
		result.AddError("name",
			fmt.Sprintf("exceeds maximum length of %d characters", maxNameLength), name)
	}
	if nameRegex.MatchString(name) {
		return
	}
	msg := "must be lowercase alphanumeric with single hyphens between segments"
	switch {
	case strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-"):
		msg = "cannot start or end with a hyphen"
	case strings.Contains(name, "--"):
		msg = "cannot contain consecutive hyphens"
	case strings.ToLower(name) != name:
		msg = "must be lowercase"
	}
	result.AddError("name", msg, name)
}

// checkDescription reports description content and length violations.
func checkDescription(result *Result, desc string) {
	if strings.ContainsAny(desc, "<>") {
		result.AddError("description", "must not contain angle brackets", desc)
	}
	if len(desc) > maxDescriptionLength {
		result.AddError("description",
			fmt.Sprintf("exceeds maximum length of %d characters", maxDescriptionLength), desc)
	}
}
