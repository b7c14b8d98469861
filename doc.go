// Package ansifmt renders structured records as ANSI colored, word-wrapped
// lines for terminal display.
//
// A [Codec] is compiled once from a [Config] with [New] and then encodes any
// number of records, concurrently if needed:
//
//	c, err := ansifmt.New(cfg)
//	line, err := c.Encode(ansifmt.Record{"level": "ERROR", "message": "disk full"})
//
// # Rendering
//
// Encode builds one line per record:
//
//   - The line style is chosen by the first [Config.Highlighters] rule whose
//     pattern matches its field. Without a match the line uses [DefaultStyle].
//   - Each [FieldSpec] renders its value, optionally through a [Formatter],
//     and recolors every match of its own highlighters. The line style is
//     restored after each highlighted span.
//   - Fields are joined by single spaces. The line style is written before
//     the first field and again after every field.
//
// # Wrapping
//
// The assembled line is wrapped at the codec's column width. Escape
// sequences take no columns and are never split. When a line is full the
// break goes after the last space or underscore if that point lies within
// half a line; otherwise the indent is inserted where the line filled up and
// the terminal's own wrap ends the line. Continuation lines start with
// Indent+1 spaces. The result ends with a newline unless the last line
// filled the width exactly.
//
// # Configuration
//
// Use [LoadConfig] or [ParseConfig] to read YAML, TOML or JSON:
//
//	columns: 100
//	indent: 2
//	highlighters:
//	  - field: level
//	    match: ERROR
//	    foreground: Red
//	    bold: true
//	fields:
//	  - level
//	  - field: message
//	    highlighters:
//	      - match: fail(ed|ure)?
//	        foreground: Yellow
//
// A field may be given as a bare name. Columns <= 0 selects the terminal
// width via [ResolveColumns].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidPattern] — a highlighter pattern does not compile
//   - [ErrUnknownColor] — a color name outside the ANSI table
//   - [ErrUnknownFormatter] — a formatter name outside [Formatters]
//   - [ErrFormatFailed] — a formatter failed on a record value
//   - [ErrUnsupportedOperation] — [Codec.Decode] was called
//   - [ErrUnsupportedConfig] — unknown config file format
//   - [ErrMalformedRecord] — a JSON line read by [ReadRecords] does not decode
package ansifmt
