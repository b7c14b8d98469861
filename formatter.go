package ansifmt

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Formatter names a transform applied to a field value before highlighting.
// The empty Formatter renders the value's [Text].
type Formatter string

const (
	Upper  Formatter = "upper"
	Lower  Formatter = "lower"
	Trim   Formatter = "trim"
	Title  Formatter = "title"
	Quote  Formatter = "quote"
	JSON   Formatter = "json"
	YAML   Formatter = "yaml"
	CSV    Formatter = "csv"
	Length Formatter = "length"
)

type formatFunc func(v any) (string, error)

var formatters = []Formatter{Upper, Lower, Trim, Title, Quote, JSON, YAML, CSV, Length}

var formatFuncs = map[Formatter]formatFunc{
	Upper: textFunc(strings.ToUpper),
	Lower: textFunc(strings.ToLower),
	Trim:  textFunc(strings.TrimSpace),
	Title: textFunc(func(s string) string {
		return cases.Title(language.Und).String(s)
	}),
	Quote:  textFunc(strconv.Quote),
	JSON:   formatJSON,
	YAML:   formatYAML,
	CSV:    formatCSV,
	Length: formatLength,
}

// String returns the formatter name.
func (f Formatter) String() string { return string(f) }

// Formatters returns all supported formatter names.
func Formatters() []Formatter {
	out := make([]Formatter, len(formatters))
	copy(out, formatters)
	return out
}

// ParseFormatter parses a formatter name. The empty string is valid and
// selects plain text rendering.
func ParseFormatter(s string) (Formatter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, f := range formatters {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormatter, s)
}

// Format applies f to v.
func (f Formatter) Format(v any) (string, error) {
	fn, err := f.compile()
	if err != nil {
		return "", err
	}
	return fn(v)
}

func (f Formatter) compile() (formatFunc, error) {
	if f == "" {
		return textFunc(func(s string) string { return s }), nil
	}
	parsed, err := ParseFormatter(string(f))
	if err != nil {
		return nil, err
	}
	return formatFuncs[parsed], nil
}

func textFunc(fn func(string) string) formatFunc {
	return func(v any) (string, error) {
		return fn(Text(v)), nil
	}
}

func formatJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// formatYAML renders v as single-line flow YAML, e.g. {a: 1, b: [x, y]}.
func formatYAML(v any) (string, error) {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return "", err
	}
	setFlowStyle(&n)
	data, err := yaml.Marshal(&n)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func setFlowStyle(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style |= yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlowStyle(c)
	}
}

// formatCSV renders a slice value as one CSV record. Other values become a
// single-field record.
func formatCSV(v any) (string, error) {
	var row []string
	switch x := v.(type) {
	case []string:
		row = x
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			row = make([]string, rv.Len())
			for i := range rv.Len() {
				row[i] = Text(rv.Index(i).Interface())
			}
		} else {
			row = []string{Text(v)}
		}
	}
	var sb strings.Builder
	cw := csv.NewWriter(&sb)
	if err := cw.Write(row); err != nil {
		return "", err
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", err
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

func formatLength(v any) (string, error) {
	if s, ok := v.(string); ok {
		return strconv.Itoa(utf8.RuneCountInString(s)), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return strconv.Itoa(rv.Len()), nil
	default:
		return "", fmt.Errorf("value of type %T has no length", v)
	}
}
