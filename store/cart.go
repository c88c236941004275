package store

import (
	"encoding/json"
	"sync"

	"github.com/xpluscommerce/storefront-api/models"
)

const (
	ShippingCost          = 9.99
	FreeShippingThreshold = 50
)

// LineItem pairs a product snapshot with a quantity. At most one line exists per
// product id.
type LineItem struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// CartStore owns the shopping cart for the current session. Totals are derived on
// every read, never cached. Every mutation writes the full item list to Storage
// before returning; construction restores from the same key. Concurrent edits of the
// same persisted cart by two sessions are not reconciled (last writer wins).
type CartStore struct {
	mu      sync.Mutex
	items   []LineItem
	open    bool
	storage Storage
}

func NewCartStore(storage Storage) *CartStore {
	s := &CartStore{storage: storage}
	if data, ok := storage.Get(CartStorageKey); ok {
		var items []LineItem
		if err := json.Unmarshal(data, &items); err == nil {
			s.items = items
		}
	}
	return s
}

// AddItem appends a new line, or bumps the quantity of the existing line for the
// same product. It also opens the cart drawer so the UI can reveal it.
func (s *CartStore) AddItem(product models.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			s.open = true
			s.persist()
			return
		}
	}
	s.items = append(s.items, LineItem{Product: product, Quantity: quantity})
	s.open = true
	s.persist()
}

// RemoveItem deletes the line for productID. No-op if absent.
func (s *CartStore) RemoveItem(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
	s.persist()
}

// UpdateQuantity sets the line's quantity exactly. Zero or negative removes the line.
func (s *CartStore) UpdateQuantity(productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if quantity <= 0 {
		s.removeLocked(productID)
		s.persist()
		return
	}
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

// Clear empties the cart. Called once, after a successful payment callback.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

func (s *CartStore) removeLocked(productID uint) {
	kept := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

func (s *CartStore) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		return
	}
	_ = s.storage.Set(CartStorageKey, data)
}

// Items returns a copy of the current lines, in insertion order.
func (s *CartStore) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of price*quantity in the base currency.
func (s *CartStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *CartStore) subtotalLocked() float64 {
	var sum float64
	for _, item := range s.items {
		sum += item.Product.Price * float64(item.Quantity)
	}
	return sum
}

// Shipping is a flat fee, waived once the subtotal reaches the free-shipping
// threshold (reaching it exactly waives the fee).
func (s *CartStore) Shipping() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return shippingFor(s.subtotalLocked())
}

func shippingFor(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return ShippingCost
}

func (s *CartStore) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal := s.subtotalLocked()
	return subtotal + shippingFor(subtotal)
}

func (s *CartStore) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *CartStore) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

func (s *CartStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

func (s *CartStore) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = !s.open
}
