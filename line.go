package ansifmt

// selectLineStyle returns the style of the first rule whose pattern matches
// its field's text. Fields absent from the record never match.
func selectLineStyle(rec Fields, rules []Highlighter) Style {
	for _, r := range rules {
		v, ok := rec.Get(r.Field)
		if !ok {
			continue
		}
		if r.Matches(Text(v)) {
			return r.Style
		}
	}
	return DefaultStyle
}
