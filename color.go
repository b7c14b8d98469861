package ansifmt

import (
	"fmt"
	"strings"
)

// Color is a symbolic ANSI color name. The zero value means no color: the
// matching section of an escape sequence is left out.
type Color string

const (
	Black   Color = "Black"
	Red     Color = "Red"
	Green   Color = "Green"
	Yellow  Color = "Yellow"
	Blue    Color = "Blue"
	Magenta Color = "Magenta"
	Cyan    Color = "Cyan"
	White   Color = "White"
	Default Color = "Default"
)

var colors = []Color{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White, Default}

var colorDigits = map[Color]byte{
	Black:   '0',
	Red:     '1',
	Green:   '2',
	Yellow:  '3',
	Blue:    '4',
	Magenta: '5',
	Cyan:    '6',
	White:   '7',
	Default: '9',
}

// String returns the color name.
func (c Color) String() string { return string(c) }

// Digit returns the SGR parameter digit for c. Colors outside the table map
// to the default color digit.
func (c Color) Digit() byte {
	if d, ok := colorDigits[c]; ok {
		return d
	}
	return '9'
}

// Colors returns all supported colors in table order.
func Colors() []Color {
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}

// ParseColor parses a color name. Matching is case-insensitive. An empty
// string parses to the zero Color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	for _, c := range colors {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
