// Package render implements the prompt template engine. It discovers
// {{name}} placeholders in document bodies, merges them with the argument
// specification declared in frontmatter, and substitutes caller-supplied
// values into the body as literal text.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// placeholderPattern matches {{identifier}} tokens. Identifiers are word
// characters only; anything else between braces is ignored.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Arg describes a single prompt parameter as declared in frontmatter.
// All fields are optional; the zero Arg means a required string with no
// description and no default.
type Arg struct {
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`
}

// Param is a named Arg within a Spec.
type Param struct {
	Name string
	Arg
}

// Spec is an ordered argument specification for a prompt. Declared
// parameters come first in declaration order, followed by parameters
// inferred from body placeholders in first-occurrence order.
type Spec []Param

// Get returns the Arg for name and whether it is present.
func (s Spec) Get(name string) (Arg, bool) {
	for _, p := range s {
		if p.Name == name {
			return p.Arg, true
		}
	}
	return Arg{}, false
}

// Has reports whether name is present in the spec.
func (s Spec) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Names returns the parameter names in spec order.
func (s Spec) Names() []string {
	names := make([]string, len(s))
	for i, p := range s {
		names[i] = p.Name
	}
	return names
}

// MarshalJSON renders the spec as a JSON object with keys in spec order.
func (s Spec) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(p.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		arg, err := json.Marshal(p.Arg)
		if err != nil {
			return nil, err
		}
		buf.Write(arg)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DeclaredArgs extracts the arguments mapping from a raw frontmatter block,
// preserving declaration order. Parsing is permissive: a block that is not
// valid YAML, has no arguments key, or declares arguments as something other
// than a mapping yields an empty spec. An entry whose value cannot decode
// into an Arg keeps its name with the zero Arg.
func DeclaredArgs(matter []byte) Spec {
	var root yaml.Node
	if err := yaml.Unmarshal(matter, &root); err != nil {
		return nil
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil
	}

	doc := root.Content[0]
	var args *yaml.Node
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == "arguments" {
			args = doc.Content[i+1]
			break
		}
	}
	if args == nil || args.Kind != yaml.MappingNode {
		return nil
	}

	spec := make(Spec, 0, len(args.Content)/2)
	seen := make(map[string]struct{}, len(args.Content)/2)
	for i := 0; i+1 < len(args.Content); i += 2 {
		name := args.Content[i].Value
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		var arg Arg
		if err := args.Content[i+1].Decode(&arg); err != nil {
			arg = Arg{}
		}
		spec = append(spec, Param{Name: name, Arg: arg})
	}
	return spec
}

// Placeholders scans body for {{identifier}} tokens and returns the unique
// identifiers in first-occurrence order.
func Placeholders(body string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

// Merge combines declared parameters with names inferred from body
// placeholders. Declared entries are never modified; inferred names not
// already declared are appended with the zero Arg. The result keeps declared
// order first, then inferred order.
func Merge(declared Spec, inferred []string) Spec {
	merged := make(Spec, len(declared), len(declared)+len(inferred))
	copy(merged, declared)
	for _, name := range inferred {
		if merged.Has(name) {
			continue
		}
		merged = append(merged, Param{Name: name})
	}
	return merged
}

// Substitute replaces every {{key}} occurrence in body whose key is present
// in values with the canonical string form of the value. Placeholders with
// no matching value are left intact, braces included, so partial
// substitution stays visible. The pass never rescans replacement text, so a
// value containing {{...}}-shaped text is not expanded further.
func Substitute(body string, values map[string]any) string {
	if len(values) == 0 {
		return body
	}
	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		name := match[2 : len(match)-2]
		v, ok := values[name]
		if !ok {
			return match
		}
		return Stringify(v)
	})
}

// Stringify converts a scalar argument value to its canonical text form:
// booleans become "true" or "false" and numbers use plain decimal notation.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint:
		return strconv.FormatUint(uint64(t), 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
