package store

import (
	"strings"
	"sync"
	"time"

	"parts-catalog/internal/catalog/model"
	"parts-catalog/internal/catalog/search"
)

// Store owns the current catalog snapshot. A load replaces the whole slice
// by reference; readers keep working on the snapshot they grabbed.
type Store struct {
	mu       sync.RWMutex
	products []model.Product
	loadedAt time.Time

	engine *search.Engine
}

func New(opts search.Options) *Store {
	return &Store{engine: search.NewEngine(opts)}
}

// Load swaps in a freshly ingested batch.
func (s *Store) Load(products []model.Product) {
	s.mu.Lock()
	s.products = products
	s.loadedAt = time.Now()
	s.mu.Unlock()
}

// Snapshot returns the current product list. Callers must not mutate it.
func (s *Store) Snapshot() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Search applies the hard categorical filters, then ranks by query text.
func (s *Store) Search(q model.Query) model.SearchResult {
	snapshot := s.Snapshot()
	candidates := search.Filter(snapshot, q)
	if q.Fuzzy {
		return s.engine.SearchFuzzy(candidates, q.Text)
	}
	return s.engine.Search(candidates, q.Text)
}

// Facets computes the option list for one filter axis given the current
// selections on the other two.
func (s *Store) Facets(axis search.Axis, q model.Query) []string {
	return search.FacetValues(s.Snapshot(), axis, q)
}

// Get looks a product up by exact code, case-insensitively.
func (s *Store) Get(code string) (model.Product, bool) {
	want := strings.ToLower(strings.TrimSpace(code))
	if want == "" {
		return model.Product{}, false
	}
	for _, p := range s.Snapshot() {
		if strings.ToLower(p.Code) == want {
			return p, true
		}
	}
	return model.Product{}, false
}
