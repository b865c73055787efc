package ingest

import (
	"regexp"
	"strings"

	"parts-catalog/internal/catalog/search"
)

// Mapping names the price-list columns. Keys support alternatives separated
// by "|" and are matched loosely against the actual sheet headers.
type Mapping struct {
	CodeKey        string
	DescriptionKey string
	PriceKey       string
	StockKey       string
	BrandKey       string
	CategoryKey    string
	SubcategoryKey string
	HeaderRow      int // 1-based
}

// FixedMapping names the optional second sheet that carries per-code
// features and equivalent codes.
type FixedMapping struct {
	CodeKey        string
	FeaturesKey    string
	EquivalentsKey string
	HeaderRow      int
}

func DefaultMapping() Mapping {
	return Mapping{
		CodeKey:        "Código|Codigo|Artículo|Articulo",
		DescriptionKey: "Descripción|Descripcion|Denominación",
		PriceKey:       "Precio|PV|Precio Venta",
		StockKey:       "Stock|Existencia|Cantidad",
		BrandKey:       "Marca",
		CategoryKey:    "Rubro|Categoría|Categoria",
		SubcategoryKey: "Subrubro|Sub Rubro|Subcategoría",
		HeaderRow:      1,
	}
}

func DefaultFixedMapping() FixedMapping {
	return FixedMapping{
		CodeKey:        "Código|Codigo|Artículo|Articulo",
		FeaturesKey:    "Características|Caracteristicas|Aplicaciones",
		EquivalentsKey: "Equivalencias|Equivalentes",
		HeaderRow:      1,
	}
}

var reHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey: lowercase, accents stripped, punctuation collapsed to
// single spaces. "Sub-Rubro " and "subrubro" land on comparable forms.
func normHeaderKey(s string) string {
	s = search.Normalize(strings.TrimSpace(s))
	s = reHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// column stems that get a scoring bonus; exports rename headers freely but
// keep these fragments
var headerStems = []string{"cod", "descrip", "precio", "stock", "marca", "rubro", "equival", "caracter"}

// resolveKey finds the real header in a record for the wanted name.
// Supports "a|b|c" alternatives, then falls back to normalized equality and
// contains-matching with stem bonuses.
func resolveKey(rec map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	nAlts := make([]string, 0, len(alts))
	for _, a := range alts {
		nAlts = append(nAlts, normHeaderKey(a))
	}

	bestKey := ""
	bestScore := 0
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range nAlts {
			if nk == n {
				return k
			}
		}
		score := 0
		for _, n := range nAlts {
			if n == "" || nk == "" {
				continue
			}
			if strings.Contains(nk, n) || strings.Contains(n, nk) {
				if len(n) > score {
					score = len(n)
				}
			}
			for _, stem := range headerStems {
				if strings.Contains(n, stem) && strings.Contains(nk, stem) {
					score += 100
				}
			}
		}
		if score > bestScore {
			bestScore, bestKey = score, k
		}
	}
	return bestKey
}

// looksLikeHeaderRow spots stray header rows inside the data region.
func looksLikeHeaderRow(rec map[string]string) bool {
	cnt := 0
	for _, v := range rec {
		s := normHeaderKey(v)
		if strings.Contains(s, "codigo") || strings.Contains(s, "descrip") ||
			strings.Contains(s, "precio") || strings.Contains(s, "rubro") {
			cnt++
		}
	}
	return cnt >= 2
}
