package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"parts-catalog/internal/catalog/cart"
	"parts-catalog/internal/catalog/store"
)

// cartIDHeader carries the opaque per-client cart key. A missing or blank
// header gets a fresh ID minted, echoed back on every response.
const cartIDHeader = "X-Cart-ID"

// Cart bundles the cart endpoints. Adding goes through the catalog store so
// price and stock always come from the current snapshot.
type Cart struct {
	logger zerolog.Logger
	store  *store.Store
	carts  *cart.Manager
}

func NewCart(logger zerolog.Logger, st *store.Store, mgr *cart.Manager) *Cart {
	return &Cart{logger: logger, store: st, carts: mgr}
}

func (h *Cart) resolve(w http.ResponseWriter, r *http.Request) *cart.Cart {
	id := r.Header.Get(cartIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(cartIDHeader, id)
	return h.carts.Get(id)
}

func (h *Cart) Get(w http.ResponseWriter, r *http.Request) {
	c := h.resolve(w, r)
	writeJSON(w, http.StatusOK, map[string]any{
		"items":  c.Items(),
		"totals": c.Totals(),
	})
}

func (h *Cart) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SKU string `json:"sku"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.SKU == "" {
		writeError(w, http.StatusBadRequest, "sku required")
		return
	}

	p, ok := h.store.Get(body.SKU)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	c := h.resolve(w, r)
	if err := c.Add(p); err != nil {
		writeError(w, cartStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":  c.Items(),
		"totals": c.Totals(),
	})
}

func (h *Cart) UpdateItem(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	var body struct {
		Quantity *int `json:"quantity"`
		Delta    *int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "bad body: "+err.Error())
		return
	}

	c := h.resolve(w, r)
	var (
		qty int
		err error
	)
	switch {
	case body.Quantity != nil:
		qty, err = c.SetQuantity(sku, *body.Quantity)
	case body.Delta != nil:
		qty, err = c.Adjust(sku, *body.Delta)
	default:
		writeError(w, http.StatusBadRequest, "quantity or delta required")
		return
	}
	if err != nil {
		writeError(w, cartStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"sku":      sku,
		"quantity": qty,
		"totals":   c.Totals(),
	})
}

func (h *Cart) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sku := chi.URLParam(r, "sku")
	c := h.resolve(w, r)
	if !c.Remove(sku) {
		writeError(w, http.StatusNotFound, cart.ErrNotFound.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":  c.Items(),
		"totals": c.Totals(),
	})
}

func (h *Cart) Checkout(w http.ResponseWriter, r *http.Request) {
	c := h.resolve(w, r)
	order, err := c.Checkout()
	if err != nil {
		writeError(w, cartStatus(err), err.Error())
		return
	}
	h.logger.Info().
		Int("lines", len(order.Items)).
		Int("units", order.Totals.Units).
		Float64("total", order.Totals.Total).
		Msg("order placed")
	writeJSON(w, http.StatusOK, order)
}

func cartStatus(err error) int {
	switch {
	case errors.Is(err, cart.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, cart.ErrEmpty):
		return http.StatusBadRequest
	default:
		// stock constraints
		return http.StatusConflict
	}
}
