package ansifmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidPattern       = errors.New("invalid pattern")
	ErrUnknownColor         = errors.New("unknown color")
	ErrUnknownFormatter     = errors.New("unknown formatter")
	ErrFormatFailed         = errors.New("format failed")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrUnsupportedConfig    = errors.New("unsupported config format")
	ErrMalformedRecord      = errors.New("malformed record")
)

// Codec renders records as ANSI colored, word-wrapped lines. A Codec is
// immutable after [New] and safe for concurrent use.
type Codec struct {
	columns      int
	indent       string
	fields       []field
	highlighters []Highlighter
}

// New compiles cfg into a Codec. Every pattern, color and formatter is
// resolved here; an invalid one fails New before any record is rendered.
// A non-positive Columns is resolved with [ResolveColumns].
func New(cfg Config) (*Codec, error) {
	fields, err := compileFields(cfg.Fields)
	if err != nil {
		return nil, err
	}
	highlighters, err := compileRules(cfg.Highlighters)
	if err != nil {
		return nil, err
	}
	return &Codec{
		columns:      ResolveColumns(cfg.Columns),
		indent:       indentString(cfg.Indent),
		fields:       fields,
		highlighters: highlighters,
	}, nil
}

// Columns returns the line width the codec wraps at.
func (c *Codec) Columns() int { return c.columns }

// Indent returns the prefix written at the start of continuation lines.
func (c *Codec) Indent() string { return c.indent }

// LineStyle returns the style of the first line highlighter matching rec, or
// [DefaultStyle].
func (c *Codec) LineStyle(rec Fields) Style {
	return selectLineStyle(rec, c.highlighters)
}

// Encode renders rec. The result always ends in a newline unless the last
// line filled the width exactly.
func (c *Codec) Encode(rec Fields) (string, error) {
	line := c.LineStyle(rec)
	msg, err := renderFields(rec, c.fields, line)
	if err != nil {
		return "", err
	}
	return wrap(msg, c.columns, c.indent), nil
}

// Decode always fails: rendered text cannot be turned back into a record.
func (c *Codec) Decode(data []byte) (Record, error) {
	return nil, fmt.Errorf("%w: decode", ErrUnsupportedOperation)
}
