package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormHeaderKey(t *testing.T) {
	assert.Equal(t, "codigo", normHeaderKey(" Código "))
	assert.Equal(t, "sub rubro", normHeaderKey("Sub-Rubro"))
	assert.Equal(t, "descripcion", normHeaderKey("DESCRIPCIÓN"))
}

func TestResolveKey(t *testing.T) {
	rec := map[string]string{
		"Código":       "F123",
		"Descripción":  "FILTRO",
		"Precio Venta": "100,00",
		"Stock Físico": "4",
		"Marca":        "MANN",
		"Rubro":        "Filtros",
	}

	// exact
	assert.Equal(t, "Código", resolveKey(rec, "Código"))
	// alternative list
	assert.Equal(t, "Código", resolveKey(rec, "Artículo|Código"))
	// normalized equality (accent-free spelling)
	assert.Equal(t, "Descripción", resolveKey(rec, "Descripcion"))
	// contains + stem bonus
	assert.Equal(t, "Precio Venta", resolveKey(rec, "Precio"))
	assert.Equal(t, "Stock Físico", resolveKey(rec, "Stock"))
	// nothing plausible
	assert.Equal(t, "", resolveKey(rec, ""))
}

func TestLooksLikeHeaderRow(t *testing.T) {
	assert.True(t, looksLikeHeaderRow(map[string]string{
		"Column 1": "Código",
		"Column 2": "Descripción",
		"Column 3": "Precio",
	}))
	assert.False(t, looksLikeHeaderRow(map[string]string{
		"Código":      "F123",
		"Descripción": "FILTRO DE ACEITE",
	}))
}
