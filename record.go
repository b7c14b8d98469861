package ansifmt

import "strings"

// Fields is the record a [Codec] renders.
type Fields interface {
	// Get returns the value of field and whether it is present.
	Get(field string) (any, bool)
}

// Record is a map-backed [Fields].
//
// Besides plain keys, Get resolves field references of the form "[a][b]",
// descending into nested maps.
type Record map[string]any

// Get implements [Fields].
func (r Record) Get(field string) (any, bool) {
	if v, ok := r[field]; ok {
		return v, true
	}
	path, ok := parseReference(field)
	if !ok {
		return nil, false
	}
	var cur any = map[string]any(r)
	for _, key := range path {
		switch m := cur.(type) {
		case map[string]any:
			cur, ok = m[key]
		case Record:
			cur, ok = m[key]
		default:
			return nil, false
		}
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// parseReference splits "[a][b]" into ["a", "b"].
func parseReference(s string) ([]string, bool) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil, false
	}
	var path []string
	for s != "" {
		if s[0] != '[' {
			return nil, false
		}
		end := strings.IndexByte(s, ']')
		if end < 2 {
			return nil, false
		}
		path = append(path, s[1:end])
		s = s[end+1:]
	}
	return path, true
}
