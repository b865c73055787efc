package search

import (
	"sort"

	"parts-catalog/internal/catalog/model"
)

// Axis names the three categorical filter dimensions.
type Axis string

const (
	AxisCategory    Axis = "category"
	AxisSubcategory Axis = "subcategory"
	AxisBrand       Axis = "brand"
)

// Filter keeps the products that satisfy every non-empty constraint,
// comparing as stored (case-sensitive). Applied before any text matching.
func Filter(products []model.Product, q model.Query) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Subcategory != "" && p.Subcategory != q.Subcategory {
			continue
		}
		if q.Brand != "" && p.Brand != q.Brand {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FacetValues answers the cross-filter availability query: the sorted set of
// distinct values on the given axis, constrained by the selections on the
// other two axes only. A selected axis never narrows its own option list.
func FacetValues(products []model.Product, axis Axis, q model.Query) []string {
	other := q
	switch axis {
	case AxisCategory:
		other.Category = ""
	case AxisSubcategory:
		other.Subcategory = ""
	case AxisBrand:
		other.Brand = ""
	}

	seen := make(map[string]struct{})
	for _, p := range Filter(products, other) {
		var v string
		switch axis {
		case AxisCategory:
			v = p.Category
		case AxisSubcategory:
			v = p.Subcategory
		case AxisBrand:
			v = p.Brand
		}
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
