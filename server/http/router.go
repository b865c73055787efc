package serverhttp

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"parts-catalog/internal/catalog/cart"
	catHnd "parts-catalog/internal/catalog/handler"
	"parts-catalog/internal/catalog/search"
	"parts-catalog/internal/catalog/store"
	"parts-catalog/internal/config"
	"parts-catalog/internal/middleware"
	"parts-catalog/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limits
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimitRPM, time.Minute))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)

	st := store.New(search.Options{Fuzzy: cfg.FuzzySearch})
	catalog := catHnd.NewCatalog(cfg, logger, st)
	carts := catHnd.NewCart(logger, st, cart.NewManager())

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
