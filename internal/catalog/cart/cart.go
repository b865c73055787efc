package cart

import (
	"errors"
	"sync"
	"time"

	"parts-catalog/internal/catalog/model"
)

// vatRate is the VAT applied on top of the wholesale subtotal.
const vatRate = 0.21

var (
	ErrOutOfStock = errors.New("product out of stock")
	ErrDeferred   = errors.New("product on deferred delivery")
	ErrStockLimit = errors.New("quantity exceeds available stock")
	ErrNotFound   = errors.New("item not in cart")
	ErrEmpty      = errors.New("cart is empty")
)

// Item is one cart line. UnitPrice carries the discounted wholesale cost,
// MaxStock the availability at the time the item was added.
type Item struct {
	SKU       string  `json:"sku"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	MaxStock  int     `json:"maxStock"`
}

type Totals struct {
	Units    int     `json:"units"`
	Subtotal float64 `json:"subtotal"`
	VAT      float64 `json:"vat"`
	Total    float64 `json:"total"`
}

// Order is the checkout snapshot.
type Order struct {
	Date   time.Time `json:"date"`
	Items  []Item    `json:"items"`
	Totals Totals    `json:"totals"`
}

// Cart is an in-memory cart, safe for concurrent use. Line order is
// preserved for rendering.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

func New() *Cart { return &Cart{} }

// Add puts one unit of the product in the cart. Zero-stock and
// deferred-delivery products are rejected; repeat adds bump the quantity up
// to the available stock.
func (c *Cart) Add(p model.Product) error {
	switch {
	case p.StockQuantity < 0:
		return ErrDeferred
	case p.StockQuantity == 0:
		return ErrOutOfStock
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].SKU == p.Code {
			if c.items[i].Quantity+1 > c.items[i].MaxStock {
				return ErrStockLimit
			}
			c.items[i].Quantity++
			return nil
		}
	}
	c.items = append(c.items, Item{
		SKU:       p.Code,
		Name:      p.Description,
		Brand:     p.Brand,
		Category:  p.Category,
		UnitPrice: p.Cost,
		Quantity:  1,
		MaxStock:  p.StockQuantity,
	})
	return nil
}

// SetQuantity sets a line's quantity, clamped to [1, MaxStock]. The applied
// quantity is returned.
func (c *Cart) SetQuantity(sku string, qty int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].SKU != sku {
			continue
		}
		if qty < 1 {
			qty = 1
		}
		if qty > c.items[i].MaxStock {
			qty = c.items[i].MaxStock
		}
		c.items[i].Quantity = qty
		return qty, nil
	}
	return 0, ErrNotFound
}

// Adjust changes a line's quantity by delta. Going below one is a no-op;
// going above the available stock fails.
func (c *Cart) Adjust(sku string, delta int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].SKU != sku {
			continue
		}
		next := c.items[i].Quantity + delta
		if next < 1 {
			return c.items[i].Quantity, nil
		}
		if next > c.items[i].MaxStock {
			return c.items[i].Quantity, ErrStockLimit
		}
		c.items[i].Quantity = next
		return next, nil
	}
	return 0, ErrNotFound
}

func (c *Cart) Remove(sku string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].SKU == sku {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Totals() Totals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalsLocked(c.items)
}

func totalsLocked(items []Item) Totals {
	var t Totals
	for _, it := range items {
		t.Units += it.Quantity
		t.Subtotal += it.UnitPrice * float64(it.Quantity)
	}
	t.VAT = t.Subtotal * vatRate
	t.Total = t.Subtotal + t.VAT
	return t
}

// Checkout snapshots the cart into an order and empties it.
func (c *Cart) Checkout() (Order, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return Order{}, ErrEmpty
	}
	items := make([]Item, len(c.items))
	copy(items, c.items)
	order := Order{
		Date:   time.Now(),
		Items:  items,
		Totals: totalsLocked(items),
	}
	c.items = nil
	return order, nil
}
