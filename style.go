package ansifmt

import "strings"

const (
	esc = '\x1b'
	sgr = 'm'
)

// Style fully determines one SGR escape sequence. There is no inherited
// state: each style resets bold and sets both colors it names.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
}

// DefaultStyle is the line style used when no line highlighter matches.
var DefaultStyle = Style{Foreground: Default, Background: Default}

// Escape returns the SGR escape sequence for s, e.g. "\x1b[1;31;49m".
func (s Style) Escape() string {
	var sb strings.Builder
	s.appendEscape(&sb)
	return sb.String()
}

func (s Style) appendEscape(sb *strings.Builder) {
	sb.WriteByte(esc)
	sb.WriteByte('[')
	if s.Bold {
		sb.WriteByte('1')
	} else {
		sb.WriteByte('0')
	}
	if s.Foreground != "" {
		sb.WriteString(";3")
		sb.WriteByte(s.Foreground.Digit())
	}
	if s.Background != "" {
		sb.WriteString(";4")
		sb.WriteByte(s.Background.Digit())
	}
	sb.WriteByte(sgr)
}
