package ansifmt

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
)

// maxLineSize bounds a single JSONL record.
const maxLineSize = 1 << 20

// ReadRecords decodes one JSON object per line of r. Numbers decode as
// [json.Number] so they render with their original digits. Blank lines are
// skipped. A line that fails to decode yields an error wrapping
// [ErrMalformedRecord] and reading goes on with the next line; a read error
// ends the sequence.
func ReadRecords(r io.Reader) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		n := 0
		for sc.Scan() {
			n++
			line := bytes.TrimSpace(sc.Bytes())
			if len(line) == 0 {
				continue
			}
			rec, err := decodeRecord(line)
			if err != nil {
				if !yield(nil, fmt.Errorf("%w: line %d: %s", ErrMalformedRecord, n, err)) {
					return
				}
				continue
			}
			if !yield(rec, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield(nil, err)
		}
	}
}

func decodeRecord(line []byte) (Record, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()
	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, err
	}
	if dec.InputOffset() != int64(len(line)) {
		return nil, errors.New("trailing data after object")
	}
	return rec, nil
}
