package ansifmt

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldSpec declares one field of the rendered line. Fields render in
// declaration order, separated by a single space. Highlighters apply in
// order to the formatted value; each sees the escapes added by the ones
// before it but never matches inside them.
type FieldSpec struct {
	Field        string    `json:"field" yaml:"field" toml:"field"`
	Formatter    Formatter `json:"formatter,omitempty" yaml:"formatter,omitempty" toml:"formatter"`
	Highlighters []Rule    `json:"highlighters,omitempty" yaml:"highlighters,omitempty" toml:"highlighters"`
}

// UnmarshalJSON accepts either an object or a bare field name.
func (s *FieldSpec) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*s = FieldSpec{Field: name}
		return nil
	}
	type plain FieldSpec
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = FieldSpec(p)
	return nil
}

// UnmarshalYAML accepts either a mapping or a bare field name.
func (s *FieldSpec) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		*s = FieldSpec{Field: n.Value}
		return nil
	}
	type plain FieldSpec
	var p plain
	if err := n.Decode(&p); err != nil {
		return err
	}
	*s = FieldSpec(p)
	return nil
}

// UnmarshalTOML accepts either a table or a bare field name.
func (s *FieldSpec) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case string:
		*s = FieldSpec{Field: x}
		return nil
	case map[string]any:
		var spec FieldSpec
		if err := tomlString(x, "field", &spec.Field); err != nil {
			return err
		}
		var format string
		if err := tomlString(x, "formatter", &format); err != nil {
			return fmt.Errorf("field %q: %w", spec.Field, err)
		}
		spec.Formatter = Formatter(format)
		switch hs := x["highlighters"].(type) {
		case nil:
		case []map[string]any:
			for _, h := range hs {
				r, err := ruleFromTable(h)
				if err != nil {
					return fmt.Errorf("field %q: %w", spec.Field, err)
				}
				spec.Highlighters = append(spec.Highlighters, r)
			}
		case []any:
			for _, h := range hs {
				t, ok := h.(map[string]any)
				if !ok {
					return fmt.Errorf("field %q: highlighter must be a table, got %T", spec.Field, h)
				}
				r, err := ruleFromTable(t)
				if err != nil {
					return fmt.Errorf("field %q: %w", spec.Field, err)
				}
				spec.Highlighters = append(spec.Highlighters, r)
			}
		default:
			return fmt.Errorf("field %q: highlighters must be an array of tables, got %T", spec.Field, hs)
		}
		*s = spec
		return nil
	default:
		return fmt.Errorf("field spec must be a string or table, got %T", v)
	}
}

func ruleFromTable(t map[string]any) (Rule, error) {
	var r Rule
	for key, dst := range map[string]*string{
		"field":      &r.Field,
		"match":      &r.Match,
		"foreground": &r.Foreground,
		"background": &r.Background,
	} {
		if err := tomlString(t, key, dst); err != nil {
			return Rule{}, fmt.Errorf("highlighter: %w", err)
		}
	}
	if v, ok := t["bold"]; ok {
		b, ok := v.(bool)
		if !ok {
			return Rule{}, fmt.Errorf("highlighter: key %q must be a boolean, got %T", "bold", v)
		}
		r.Bold = b
	}
	return r, nil
}

// tomlString stores t[key] in dst when present. A value of any other type
// is an error.
func tomlString(t map[string]any, key string, dst *string) error {
	v, ok := t[key]
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("key %q must be a string, got %T", key, v)
	}
	*dst = s
	return nil
}

type field struct {
	name   string
	format formatFunc
	subs   []Highlighter
}

func compileFields(specs []FieldSpec) ([]field, error) {
	out := make([]field, 0, len(specs))
	for _, s := range specs {
		format, err := s.Formatter.compile()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", s.Field, err)
		}
		subs, err := compileRules(s.Highlighters)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", s.Field, err)
		}
		out = append(out, field{name: s.Field, format: format, subs: subs})
	}
	return out, nil
}

// renderFields assembles the unwrapped line: the line escape, then each
// field followed by the line escape again.
func renderFields(rec Fields, fields []field, line Style) (string, error) {
	var sb strings.Builder
	line.appendEscape(&sb)
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(' ')
		}
		value, err := f.render(rec, line)
		if err != nil {
			return "", err
		}
		sb.WriteString(value)
		line.appendEscape(&sb)
	}
	return sb.String(), nil
}

func (f field) render(rec Fields, line Style) (string, error) {
	v, ok := rec.Get(f.name)
	if !ok {
		return "", nil
	}
	value, err := f.format(v)
	if err != nil {
		return "", fmt.Errorf("%w: field %q: %s", ErrFormatFailed, f.name, err)
	}
	for _, sub := range f.subs {
		value = sub.highlight(value, line)
	}
	return value, nil
}
