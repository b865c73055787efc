package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"parts-catalog/internal/catalog/model"
)

func filterFixture() []model.Product {
	return []model.Product{
		{Code: "A1", Category: "Filtros", Subcategory: "Aceite", Brand: "MANN"},
		{Code: "A2", Category: "Filtros", Subcategory: "Aire", Brand: "MANN"},
		{Code: "B1", Category: "Bombas", Subcategory: "Agua", Brand: "SKF"},
		{Code: "B2", Category: "Bombas", Subcategory: "Agua", Brand: "DOLZ"},
	}
}

func TestFilterExact(t *testing.T) {
	got := Filter(filterFixture(), model.Query{Category: "Filtros"})
	assert.Len(t, got, 2)

	got = Filter(filterFixture(), model.Query{Category: "Filtros", Brand: "MANN", Subcategory: "Aire"})
	assert.Len(t, got, 1)
	assert.Equal(t, "A2", got[0].Code)

	// case-sensitive, as stored
	assert.Empty(t, Filter(filterFixture(), model.Query{Category: "filtros"}))

	// empty constraints impose nothing
	assert.Len(t, Filter(filterFixture(), model.Query{}), 4)
}

func TestFacetValuesCrossFilter(t *testing.T) {
	products := filterFixture()

	// selecting a category never narrows the category list itself
	q := model.Query{Category: "Filtros"}
	assert.Equal(t, []string{"Bombas", "Filtros"}, FacetValues(products, AxisCategory, q))

	// but it narrows the other two axes
	assert.Equal(t, []string{"Aceite", "Aire"}, FacetValues(products, AxisSubcategory, q))
	assert.Equal(t, []string{"MANN"}, FacetValues(products, AxisBrand, q))

	// brand selection feeds back into categories
	q = model.Query{Brand: "SKF"}
	assert.Equal(t, []string{"Bombas"}, FacetValues(products, AxisCategory, q))
}
