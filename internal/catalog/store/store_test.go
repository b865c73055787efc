package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parts-catalog/internal/catalog/model"
	"parts-catalog/internal/catalog/search"
)

func testStore() *Store {
	s := New(search.Options{})
	s.Load([]model.Product{
		{Code: "F100", Description: "FILTRO DE ACEITE BOSCH", Category: "Filtros", Subcategory: "Aceite", Brand: "BOSCH", StockQuantity: 3},
		{Code: "F200", Description: "FILTRO DE AIRE MANN", Category: "Filtros", Subcategory: "Aire", Brand: "MANN", StockQuantity: 0},
		{Code: "B300", Description: "BOMBA DE AGUA", Category: "Bombas", Subcategory: "Agua", Brand: "DOLZ", StockQuantity: 8},
	})
	return s
}

func TestLoadReplacesWholesale(t *testing.T) {
	s := testStore()
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.LoadedAt().IsZero())

	s.Load([]model.Product{{Code: "X1", Category: "Otros"}})
	assert.Equal(t, 1, s.Len())
}

func TestSearchAppliesFiltersBeforeText(t *testing.T) {
	s := testStore()

	res := s.Search(model.Query{Text: "filtro"})
	assert.Equal(t, 2, res.Total)

	// the brand filter narrows the candidate set before matching
	res = s.Search(model.Query{Text: "filtro", Brand: "MANN"})
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "F200", res.Products[0].Code)
}

func TestFacets(t *testing.T) {
	s := testStore()
	got := s.Facets(search.AxisBrand, model.Query{Category: "Filtros"})
	assert.Equal(t, []string{"BOSCH", "MANN"}, got)
}

func TestGetCaseInsensitive(t *testing.T) {
	s := testStore()
	p, ok := s.Get("f100")
	require.True(t, ok)
	assert.Equal(t, "F100", p.Code)

	_, ok = s.Get("nope")
	assert.False(t, ok)
	_, ok = s.Get("  ")
	assert.False(t, ok)
}
