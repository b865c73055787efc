package search

import (
	"sort"
	"strings"

	"parts-catalog/internal/catalog/model"
)

// MaxResults caps the page handed to the renderer. The total match count is
// still reported pre-cap.
const MaxResults = 100

// Options toggles the optional matching strategies.
type Options struct {
	// Fuzzy lets a query token also match through a domain synonym or an
	// edit-distance-1 word of the record text. Off by default.
	Fuzzy bool
}

type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// match types, strongest first
const (
	matchExact       = 4
	matchPrefix      = 3
	matchSubstring   = 2
	matchSubsequence = 1
	matchNone        = 0
)

// Search selects and orders the candidates for a raw query. Candidates are
// assumed to be already filtered by category/subcategory/brand; the slice is
// treated as an immutable snapshot for the duration of the call.
func (e *Engine) Search(candidates []model.Product, rawQuery string) model.SearchResult {
	return e.search(e.opts, candidates, rawQuery)
}

// SearchFuzzy runs the same query with the approximate strategies forced on,
// regardless of how the engine was configured.
func (e *Engine) SearchFuzzy(candidates []model.Product, rawQuery string) model.SearchResult {
	return e.search(Options{Fuzzy: true}, candidates, rawQuery)
}

func (e *Engine) search(opts Options, candidates []model.Product, rawQuery string) model.SearchResult {
	raw := strings.TrimSpace(rawQuery)

	if raw == "" {
		matched := make([]model.Product, len(candidates))
		copy(matched, candidates)
		sort.SliceStable(matched, func(i, j int) bool {
			return CompareCodes(matched[i].Code, matched[j].Code) < 0
		})
		return capResult(matched, nil)
	}

	queryNorm := Normalize(raw)
	terms := Tokenize(queryNorm)
	cleanQuery := CleanCode(raw)
	parts := QueryParts(raw)

	type ranked struct {
		p  model.Product
		mt int
	}
	hits := make([]ranked, 0, 64)
	for _, p := range candidates {
		if p.Code == "" {
			continue
		}
		if matchFields(opts, p, terms) || matchCode(p.Code, cleanQuery, parts) {
			hits = append(hits, ranked{p: p, mt: matchType(Normalize(p.Code), queryNorm)})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].mt != hits[j].mt {
			return hits[i].mt > hits[j].mt
		}
		return CompareCodes(hits[i].p.Code, hits[j].p.Code) < 0
	})

	matched := make([]model.Product, len(hits))
	for i, h := range hits {
		matched[i] = h.p
	}
	return capResult(matched, terms)
}

func capResult(matched []model.Product, terms []string) model.SearchResult {
	total := len(matched)
	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}
	return model.SearchResult{Products: matched, Total: total, Terms: terms}
}

// matchFields is the standard strategy: every query token must occur in the
// record's searchable text. Token order does not matter.
func matchFields(opts Options, p model.Product, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	text := Normalize(strings.Join([]string{p.Code, p.Description, p.Brand, p.Category, p.Subcategory}, " "))
	for _, t := range terms {
		if !termMatches(opts, text, t) {
			return false
		}
	}
	return true
}

func termMatches(opts Options, text, term string) bool {
	if strings.Contains(text, term) {
		return true
	}
	if !opts.Fuzzy {
		return false
	}
	for _, alt := range Expand(term) {
		if strings.Contains(text, alt) {
			return true
		}
	}
	// approximate word match; short terms would be too noisy
	if len(term) < 4 {
		return false
	}
	for _, w := range strings.Fields(text) {
		if EditDistance(term, w) <= 1 {
			return true
		}
	}
	return false
}

// matchCode is the flexible code strategy. Only attempted when the cleaned
// query has at least two characters.
func matchCode(code, cleanQuery string, parts []string) bool {
	if len(cleanQuery) < 2 {
		return false
	}
	clean := CleanCode(code)
	if strings.Contains(clean, cleanQuery) {
		return true
	}
	if len(parts) < 2 {
		return false
	}
	// each segment must start strictly after the previous segment's start,
	// so "KTB 271" reaches "lktbn271" but "271 KTB" does not
	last := -1
	for _, part := range parts {
		idx := strings.Index(clean[last+1:], part)
		if idx < 0 {
			return false
		}
		last = last + 1 + idx
	}
	return true
}

// matchType classifies how strongly a normalized code relates to the
// normalized query: exact > prefix > substring > in-order subsequence.
func matchType(code, query string) int {
	switch {
	case code == query:
		return matchExact
	case strings.HasPrefix(code, query):
		return matchPrefix
	case strings.Contains(code, query):
		return matchSubstring
	}
	if subsequenceLen(code, query) > 0 {
		return matchSubsequence
	}
	return matchNone
}

// subsequenceLen counts query characters found left-to-right in code.
func subsequenceLen(code, query string) int {
	n := 0
	last := -1
	for _, c := range query {
		idx := strings.IndexRune(code[last+1:], c)
		if idx < 0 {
			continue
		}
		last = last + 1 + idx
		n++
	}
	return n
}
