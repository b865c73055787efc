package model

// Product is one row of the ingested price list. Built once per load,
// immutable afterwards.
type Product struct {
	Code            string  `json:"code"`
	Description     string  `json:"description"`
	Brand           string  `json:"brand"`
	Category        string  `json:"category"`
	Subcategory     string  `json:"subcategory"`
	PriceDisplay    string  `json:"price"`
	PriceRaw        float64 `json:"priceRaw"`
	Cost            float64 `json:"cost"`
	StockQuantity   int     `json:"stock"`
	Features        string  `json:"features,omitempty"`
	EquivalentCodes string  `json:"equivalentCodes,omitempty"`
}

// Query is one search invocation: free text plus optional hard filters.
// An empty filter value imposes no constraint. Fuzzy forces approximate
// matching on for this query even when the engine default is off.
type Query struct {
	Text        string
	Category    string
	Subcategory string
	Brand       string
	Fuzzy       bool
}

// SearchResult holds the capped, ranked page plus the pre-cap total and the
// normalized terms that matched (input for the highlighter).
type SearchResult struct {
	Products []Product
	Total    int
	Terms    []string
}

// StockLevel is the four-way display classification of StockQuantity.
type StockLevel int

const (
	StockDeferred StockLevel = iota // negative: delayed delivery
	StockOut                        // zero
	StockLow                        // 1..5: last units
	StockAvailable                  // >5
)

func ClassifyStock(qty int) StockLevel {
	switch {
	case qty < 0:
		return StockDeferred
	case qty == 0:
		return StockOut
	case qty <= 5:
		return StockLow
	default:
		return StockAvailable
	}
}

func (s StockLevel) String() string {
	switch s {
	case StockDeferred:
		return "deferred"
	case StockOut:
		return "out_of_stock"
	case StockLow:
		return "last_units"
	default:
		return "available"
	}
}
