package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "radiador alvarez", Normalize("RADIADOR ÁLVAREZ"))
	assert.Equal(t, "nino", Normalize("Niño"))
	assert.Equal(t, "", Normalize(""))
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{
		"RADIADOR ÁLVAREZ",
		"bomba de agua",
		"Émbolo Año 2003",
		"LKTB-N271",
		"",
	} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", s)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"filtro", "aceite"}, Tokenize("  filtro   aceite "))
	assert.Empty(t, Tokenize("   "))
}
