package search

// Domain abbreviations common in parts price lists. The table is closed;
// lookup keys must already be normalized.
var synonyms = map[string][]string{
	"bomba": {"bba"},
	"bba":   {"bomba"},
	"k":     {"kit"},
	"kit":   {"k"},
	"izq":   {"izquierda"},
	"der":   {"derecha"},
	"del":   {"delantera"},
	"tras":  {"trasera"},
}

// Expand returns the term itself plus any mapped alternates. Unknown terms
// come back alone. Callers tolerate duplicates.
func Expand(term string) []string {
	out := []string{term}
	return append(out, synonyms[term]...)
}
