package search

import (
	"regexp"
	"sort"
	"strings"
)

// Highlight wraps every case-insensitive occurrence of a query token in the
// display text with <mark> tags. Longer tokens win the alternation, so an
// overlapping shorter token cannot split a longer highlight. Presentation
// only; ranking never sees this.
func Highlight(display, rawQuery string) string {
	terms := Tokenize(Normalize(rawQuery))
	if len(terms) == 0 {
		return display
	}
	sort.SliceStable(terms, func(i, j int) bool { return len(terms[i]) > len(terms[j]) })

	esc := make([]string, len(terms))
	for i, t := range terms {
		esc[i] = regexp.QuoteMeta(t)
	}
	re, err := regexp.Compile(`(?i)(` + strings.Join(esc, "|") + `)`)
	if err != nil {
		return display
	}
	return re.ReplaceAllString(display, "<mark>$1</mark>")
}
