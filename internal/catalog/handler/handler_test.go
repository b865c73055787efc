package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parts-catalog/internal/catalog/cart"
	"parts-catalog/internal/catalog/model"
	"parts-catalog/internal/catalog/search"
	"parts-catalog/internal/catalog/store"
	"parts-catalog/internal/config"
)

func testRouter() *chi.Mux {
	st := store.New(search.Options{})
	st.Load([]model.Product{
		{Code: "F100", Description: "FILTRO DE ACEITE BOSCH", Category: "Filtros", Subcategory: "Aceite", Brand: "BOSCH", Cost: 58, StockQuantity: 3},
		{Code: "F200", Description: "FILTRO DE AIRE MANN", Category: "Filtros", Subcategory: "Aire", Brand: "MANN", Cost: 40, StockQuantity: 0},
		{Code: "B300", Description: "BOMBA DE AGUA", Category: "Bombas", Subcategory: "Agua", Brand: "DOLZ", Cost: 120, StockQuantity: 8},
	})

	catalog := NewCatalog(config.Config{MaxUploadMB: 8}, zerolog.Nop(), st)
	carts := NewCart(zerolog.Nop(), st, cart.NewManager())

	r := chi.NewRouter()
	r.Route("/catalog", func(r chi.Router) {
		r.Post("/load", catalog.Load)
		r.Get("/search", catalog.Search)
		r.Get("/facets", catalog.Facets)
		r.Get("/products/{code}", catalog.Product)
	})
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", carts.Get)
		r.Post("/items", carts.AddItem)
		r.Patch("/items/{sku}", carts.UpdateItem)
		r.Delete("/items/{sku}", carts.RemoveItem)
		r.Post("/checkout", carts.Checkout)
	})
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, header http.Header) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestSearchEndpoint(t *testing.T) {
	r := testRouter()
	w, out := doJSON(t, r, http.MethodGet, "/catalog/search?q=filtro+bosch", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), out["total"])

	items := out["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "F100", item["code"])
	assert.Equal(t, "last_units", item["stockLevel"])
	assert.Equal(t, "<mark>FILTRO</mark> DE ACEITE <mark>BOSCH</mark>", item["descriptionHTML"])
}

func TestSearchEndpointFuzzyParam(t *testing.T) {
	r := testRouter()
	w, out := doJSON(t, r, http.MethodGet, "/catalog/search?q=bba+agua", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), out["total"])

	w, out = doJSON(t, r, http.MethodGet, "/catalog/search?q=bba+agua&fuzzy=1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), out["total"])
}

func TestSearchEndpointWithFilters(t *testing.T) {
	r := testRouter()
	w, out := doJSON(t, r, http.MethodGet, "/catalog/search?category=Bombas", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), out["total"])
}

func TestFacetsEndpoint(t *testing.T) {
	r := testRouter()
	w, out := doJSON(t, r, http.MethodGet, "/catalog/facets?axis=brand&category=Filtros", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{"BOSCH", "MANN"}, out["values"])

	w, _ = doJSON(t, r, http.MethodGet, "/catalog/facets?axis=price", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductEndpoint(t *testing.T) {
	r := testRouter()
	w, out := doJSON(t, r, http.MethodGet, "/catalog/products/f100", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "F100", out["code"])

	w, _ = doJSON(t, r, http.MethodGet, "/catalog/products/zzz", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoadEndpointCSV(t *testing.T) {
	r := testRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("pricelist", "lista.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(
		"Código,Descripción,Precio,Stock,Marca,Rubro,Subrubro\n" +
			"Z900,CORREA DENTADA,\"2.500,00\",7,GATES,Distribución,Correas\n" +
			"Z901,SIN RUBRO,\"1,00\",1,X,,\n"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("discount", "10"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/catalog/load", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, float64(1), out["loaded"])

	// the snapshot was replaced wholesale
	w2, res := doJSON(t, r, http.MethodGet, "/catalog/search?q=correa", nil, nil)
	require.Equal(t, http.StatusOK, w2.Code)
	require.Equal(t, float64(1), res["total"])
	item := res["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Z900", item["code"])
	assert.InDelta(t, 2250.0, item["cost"].(float64), 1e-6) // 10% off 2500
}

func TestCartFlow(t *testing.T) {
	r := testRouter()

	// add a product; response carries the minted cart ID
	w, out := doJSON(t, r, http.MethodPost, "/cart/items", map[string]string{"sku": "F100"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cartID := w.Header().Get("X-Cart-ID")
	require.NotEmpty(t, cartID)

	hdr := http.Header{"X-Cart-Id": {cartID}}

	// quantity clamps to stock (3)
	w, out = doJSON(t, r, http.MethodPatch, "/cart/items/F100", map[string]int{"quantity": 99}, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), out["quantity"])

	// out-of-stock product is rejected
	w, _ = doJSON(t, r, http.MethodPost, "/cart/items", map[string]string{"sku": "F200"}, hdr)
	assert.Equal(t, http.StatusConflict, w.Code)

	// unknown product
	w, _ = doJSON(t, r, http.MethodPost, "/cart/items", map[string]string{"sku": "nope"}, hdr)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// checkout empties the cart
	w, out = doJSON(t, r, http.MethodPost, "/cart/checkout", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	totals := out["totals"].(map[string]any)
	assert.InDelta(t, 58*3*1.21, totals["total"].(float64), 1e-6)

	w, out = doJSON(t, r, http.MethodGet, "/cart/", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, out["items"])
}
