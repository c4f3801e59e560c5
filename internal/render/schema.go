package render

import (
	"strconv"

	"github.com/cockroachdb/errors"
)

// Parameter types understood by the schema. An empty or unrecognized type
// declaration is treated as TypeString.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
)

// Field is one parameter in a Schema.
type Field struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Default     any
}

// Schema validates caller-supplied argument values against a merged spec.
type Schema struct {
	Fields []Field
}

// BuildSchema derives the structural schema for a merged spec. A parameter
// with a default is optional and takes the default when omitted. A boolean
// without a default is optional with no default, so an absent boolean stays
// absent rather than becoming false. Everything else is required.
func BuildSchema(spec Spec) Schema {
	fields := make([]Field, 0, len(spec))
	for _, p := range spec {
		f := Field{
			Name:        p.Name,
			Type:        normalizeType(p.Type),
			Description: p.Description,
		}
		switch {
		case p.Default != nil:
			f.Default = p.Default
		case f.Type == TypeBoolean:
		default:
			f.Required = true
		}
		fields = append(fields, f)
	}
	return Schema{Fields: fields}
}

// Validate checks values against the schema and returns a completed copy:
// omitted optional fields gain their defaults, typed fields are coerced from
// string form where needed, and keys outside the schema pass through
// unchanged. All missing and mistyped fields are reported together.
func (s Schema) Validate(values map[string]any) (map[string]any, error) {
	completed := make(map[string]any, len(s.Fields)+len(values))
	for name, v := range values {
		completed[name] = v
	}

	var errs []error
	for _, f := range s.Fields {
		v, ok := values[f.Name]
		if !ok {
			if f.Required {
				errs = append(errs, errors.Newf("missing required argument %q", f.Name))
				continue
			}
			if f.Default != nil {
				completed[f.Name] = f.Default
			}
			continue
		}

		coerced, err := coerce(v, f.Type)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "argument %q", f.Name))
			continue
		}
		completed[f.Name] = coerced
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return completed, nil
}

func normalizeType(t string) string {
	switch t {
	case TypeNumber, TypeBoolean:
		return t
	default:
		return TypeString
	}
}

// coerce converts v to the field type. String inputs are parsed for number
// and boolean fields since values arriving over a CLI or wire protocol are
// plain text.
func coerce(v any, typ string) (any, error) {
	switch typ {
	case TypeBoolean:
		switch t := v.(type) {
		case bool:
			return t, nil
		case string:
			b, err := strconv.ParseBool(t)
			if err != nil {
				return nil, errors.Newf("expected a boolean, got %q", t)
			}
			return b, nil
		default:
			return nil, errors.Newf("expected a boolean, got %T", v)
		}
	case TypeNumber:
		switch t := v.(type) {
		case int, int32, int64, uint, uint64, float32, float64:
			return t, nil
		case string:
			n, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return nil, errors.Newf("expected a number, got %q", t)
			}
			return n, nil
		default:
			return nil, errors.Newf("expected a number, got %T", v)
		}
	default:
		switch v.(type) {
		case nil, string, bool, int, int32, int64, uint, uint64, float32, float64:
			return v, nil
		default:
			return nil, errors.Newf("expected a string, got %T", v)
		}
	}
}
