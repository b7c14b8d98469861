package ansifmt

import (
	"io"
	"iter"
)

// Write encodes each record and writes it to w.
func (c *Codec) Write(w io.Writer, recs ...Fields) error {
	for _, rec := range recs {
		if err := c.writeOne(w, rec); err != nil {
			return err
		}
	}
	return nil
}

// WriteIter encodes records from an iterator and writes them to w as they
// arrive. It stops at the first error.
func (c *Codec) WriteIter(w io.Writer, seq iter.Seq[Fields]) error {
	var streamErr error
	seq(func(rec Fields) bool {
		if err := c.writeOne(w, rec); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan encodes records from a channel and writes them to w.
// It is a thin wrapper around [Codec.WriteIter].
func (c *Codec) WriteChan(w io.Writer, ch <-chan Fields) error {
	return c.WriteIter(w, chanToIter(ch))
}

func (c *Codec) writeOne(w io.Writer, rec Fields) error {
	line, err := c.Encode(rec)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, line)
	return err
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
