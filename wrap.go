package ansifmt

import (
	"strings"
	"unicode/utf8"
)

// indentString returns the continuation prefix for indent. It is one space
// longer than indent.
func indentString(indent int) string {
	if indent < 0 {
		indent = 0
	}
	return strings.Repeat(" ", indent+1)
}

// wrap lays src out in lines of columns visible characters, prefixing every
// continuation line with indent. Each rune takes one column. Escape
// sequences (ESC ... 'm') are copied intact and take no columns. A line that
// runs out of room is broken after the last space or underscore when that
// break point lies within half a line of the current position; otherwise
// only the indent is inserted and the terminal's own wrap ends the line.
func wrap(src string, columns int, indent string) string {
	var out strings.Builder
	out.Grow(len(src) + len(src)/max(columns, 1)*(len(indent)+1) + 1)

	// tail holds the source text emitted since the last break point, so a
	// soft break can still place the newline in front of it. tailCols is
	// its visible width.
	var tail strings.Builder
	tailCols := 0
	flush := func() {
		out.WriteString(tail.String())
		tail.Reset()
		tailCols = 0
	}

	count := 0
	canBreak := false
	for i := 0; i < len(src); {
		if count == columns {
			if !canBreak || tailCols > columns/2 {
				flush()
				out.WriteString(indent)
				count = len(indent)
			} else {
				count = len(indent) + tailCols
				out.WriteByte('\n')
				out.WriteString(indent)
				flush()
			}
			canBreak = false
		}

		switch c := src[i]; c {
		case ' ', '_':
			tail.WriteByte(c)
			flush()
			canBreak = true
			count++
			i++
		case '\r':
			tail.WriteByte(c)
			i++
		case '\n':
			tail.WriteByte(c)
			flush()
			out.WriteString(indent)
			count = len(indent) + 1
			canBreak = false
			i++
		case esc:
			end := escapeEnd(src, i)
			tail.WriteString(src[i:end])
			i = end
		default:
			_, size := utf8.DecodeRuneInString(src[i:])
			tail.WriteString(src[i : i+size])
			tailCols++
			count++
			i += size
		}
	}
	flush()

	if count < columns {
		out.WriteByte('\n')
	}
	return out.String()
}

// escapeEnd returns the index just past the 'm' terminating the escape
// sequence starting at i, or len(s) when it is unterminated.
func escapeEnd(s string, i int) int {
	if j := strings.IndexByte(s[i:], sgr); j >= 0 {
		return i + j + 1
	}
	return len(s)
}
