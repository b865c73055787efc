package cart

import "sync"

// Manager hands out per-client carts keyed by an opaque ID (the HTTP layer
// mints the IDs). Carts live for the process lifetime; there is no
// persistence.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

func (m *Manager) Get(id string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[id]
	if !ok {
		c = New()
		m.carts[id] = c
	}
	return c
}

func (m *Manager) Drop(id string) {
	m.mu.Lock()
	delete(m.carts, id)
	m.mu.Unlock()
}
