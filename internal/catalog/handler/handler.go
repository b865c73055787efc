package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"parts-catalog/internal/catalog/ingest"
	"parts-catalog/internal/catalog/model"
	"parts-catalog/internal/catalog/search"
	"parts-catalog/internal/catalog/store"
	"parts-catalog/internal/config"
	"parts-catalog/internal/fileio"
)

// Catalog bundles the catalog endpoints around one store.
type Catalog struct {
	cfg    config.Config
	logger zerolog.Logger
	store  *store.Store
}

func NewCatalog(cfg config.Config, logger zerolog.Logger, st *store.Store) *Catalog {
	return &Catalog{cfg: cfg, logger: logger, store: st}
}

// Load ingests an uploaded price list (plus an optional fixed-data sheet)
// and swaps the catalog snapshot.
func (h *Catalog) Load(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	log := h.reqLogger(r)

	if err := r.ParseMultipartForm(int64(h.cfg.MaxUploadMB) << 20); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("pricelist")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing pricelist: "+err.Error())
		return
	}
	defer file.Close()

	m := ingest.DefaultMapping()
	m.HeaderRow = atoi(r.FormValue("header_row"), 1)
	rows, err := fileio.ReadAnyMaps(file, header.Filename, m.HeaderRow)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read pricelist: "+err.Error())
		return
	}

	fm := ingest.DefaultFixedMapping()
	var fixedRows []map[string]string
	if fixedFile, fixedHeader, ferr := r.FormFile("fixed"); ferr == nil {
		defer fixedFile.Close()
		fm.HeaderRow = atoi(r.FormValue("fixed_header_row"), 1)
		fixedRows, err = fileio.ReadAnyMaps(fixedFile, fixedHeader.Filename, fm.HeaderRow)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read fixed data: "+err.Error())
			return
		}
	}

	opt := ingest.Options{
		DiscountPercent: toFloat(r.FormValue("discount"), h.cfg.DefaultDiscount),
		ExcludedBrands:  h.cfg.ExcludedBrands,
	}
	if v := r.FormValue("excluded_brands"); v != "" {
		opt.ExcludedBrands = splitList(v)
	}

	products := ingest.BuildProducts(rows, fixedRows, m, fm, opt)
	h.store.Load(products)

	log.Info().
		Int("rows", len(rows)).
		Int("products", len(products)).
		Float64("discount", opt.DiscountPercent).
		Dur("elapsed", time.Since(start)).
		Msg("catalog loaded")

	writeJSON(w, http.StatusOK, map[string]any{
		"loaded":   len(products),
		"skipped":  len(rows) - len(products),
		"discount": opt.DiscountPercent,
	})
}

// searchItem is one rendered result row.
type searchItem struct {
	model.Product
	StockLevel      string `json:"stockLevel"`
	CodeHTML        string `json:"codeHTML"`
	DescriptionHTML string `json:"descriptionHTML"`
}

// Search runs the filtered, ranked query against the current snapshot.
func (h *Catalog) Search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := model.Query{
		Text:        r.URL.Query().Get("q"),
		Category:    r.URL.Query().Get("category"),
		Subcategory: r.URL.Query().Get("subcategory"),
		Brand:       r.URL.Query().Get("brand"),
		Fuzzy:       r.URL.Query().Get("fuzzy") == "1",
	}

	res := h.store.Search(q)

	items := make([]searchItem, 0, len(res.Products))
	for _, p := range res.Products {
		items = append(items, searchItem{
			Product:         p,
			StockLevel:      model.ClassifyStock(p.StockQuantity).String(),
			CodeHTML:        search.Highlight(p.Code, q.Text),
			DescriptionHTML: search.Highlight(p.Description, q.Text),
		})
	}

	log := h.reqLogger(r)
	log.Debug().
		Str("q", q.Text).
		Int("total", res.Total).
		Dur("elapsed", time.Since(start)).
		Msg("search")

	writeJSON(w, http.StatusOK, map[string]any{
		"total": res.Total,
		"count": len(items),
		"terms": res.Terms,
		"items": items,
	})
}

// Facets returns the option list for one filter axis, computed from the
// selections on the other two.
func (h *Catalog) Facets(w http.ResponseWriter, r *http.Request) {
	axis := search.Axis(r.URL.Query().Get("axis"))
	switch axis {
	case search.AxisCategory, search.AxisSubcategory, search.AxisBrand:
	default:
		writeError(w, http.StatusBadRequest, "axis must be category, subcategory or brand")
		return
	}
	q := model.Query{
		Category:    r.URL.Query().Get("category"),
		Subcategory: r.URL.Query().Get("subcategory"),
		Brand:       r.URL.Query().Get("brand"),
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"axis":   axis,
		"values": h.store.Facets(axis, q),
	})
}

// Product serves the deep-link lookup by exact code.
func (h *Catalog) Product(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	p, ok := h.store.Get(code)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, searchItem{
		Product:    p,
		StockLevel: model.ClassifyStock(p.StockQuantity).String(),
	})
}

func (h *Catalog) reqLogger(r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return h.logger.With().Str("req_id", rid).Logger()
	}
	return h.logger
}
