package ansifmt

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is the configuration form of a highlighter. Match is a regular
// expression tested against the text of Field. Colors left empty compile to
// [Default].
type Rule struct {
	Field      string `json:"field,omitempty" yaml:"field,omitempty" toml:"field"`
	Match      string `json:"match" yaml:"match" toml:"match"`
	Foreground string `json:"foreground,omitempty" yaml:"foreground,omitempty" toml:"foreground"`
	Background string `json:"background,omitempty" yaml:"background,omitempty" toml:"background"`
	Bold       bool   `json:"bold,omitempty" yaml:"bold,omitempty" toml:"bold"`
}

// Highlighter is a compiled [Rule].
type Highlighter struct {
	Field   string
	Pattern *regexp.Regexp
	Style   Style
}

// Compile compiles the rule's pattern and resolves its colors.
func (r Rule) Compile() (Highlighter, error) {
	pattern, err := regexp.Compile(r.Match)
	if err != nil {
		return Highlighter{}, fmt.Errorf("%w: %q: %s", ErrInvalidPattern, r.Match, err)
	}
	fg, err := ParseColor(r.Foreground)
	if err != nil {
		return Highlighter{}, fmt.Errorf("rule %q foreground: %w", r.Match, err)
	}
	bg, err := ParseColor(r.Background)
	if err != nil {
		return Highlighter{}, fmt.Errorf("rule %q background: %w", r.Match, err)
	}
	if fg == "" {
		fg = Default
	}
	if bg == "" {
		bg = Default
	}
	return Highlighter{
		Field:   r.Field,
		Pattern: pattern,
		Style:   Style{Foreground: fg, Background: bg, Bold: r.Bold},
	}, nil
}

// Matches reports whether the pattern matches anywhere in value.
func (h Highlighter) Matches(value string) bool {
	return h.Pattern.MatchString(value)
}

// highlight replaces every match in value with the match wrapped in the
// highlighter's escape and the line escape that restores the line color.
// Escape sequences already in value are skipped, so a match never spans or
// rewrites one; anchors apply to each run of text between escapes.
func (h Highlighter) highlight(value string, line Style) string {
	open, restore := h.Style.Escape(), line.Escape()
	replace := func(m string) string {
		return open + m + restore
	}
	if strings.IndexByte(value, esc) < 0 {
		return h.Pattern.ReplaceAllStringFunc(value, replace)
	}

	var sb strings.Builder
	for value != "" {
		i := strings.IndexByte(value, esc)
		if i < 0 {
			i = len(value)
		}
		if i > 0 {
			sb.WriteString(h.Pattern.ReplaceAllStringFunc(value[:i], replace))
		}
		if i == len(value) {
			break
		}
		end := escapeEnd(value, i)
		sb.WriteString(value[i:end])
		value = value[end:]
	}
	return sb.String()
}

func compileRules(rules []Rule) ([]Highlighter, error) {
	out := make([]Highlighter, 0, len(rules))
	for _, r := range rules {
		h, err := r.Compile()
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
