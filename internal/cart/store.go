// Package cart implements the in-memory per-user shopping cart.
//
// Carts live for the process lifetime only; they are created lazily on first
// mutation and removed only by Clear. Stock is validated solely at add time
// against the caller-supplied catalog snapshot, so stock changes made on the
// admin side are enforced on the next add attempt, not retroactively.
package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
)

// Error is a cart domain error carrying a stable code for structured logs.
type Error struct {
	code string
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable error code.
func (e *Error) Code() string { return e.code }

var (
	// ErrOutOfStock is returned when the product has no available stock at all.
	ErrOutOfStock = &Error{code: "OUT_OF_STOCK", msg: "product is out of stock"}
	// ErrStockLimit is returned when the cart already holds all available stock.
	ErrStockLimit = &Error{code: "STOCK_LIMIT_REACHED", msg: "available stock already in cart"}
)

// Store owns every per-user cart. Mutations for one user are serialized by a
// per-user lock so overlapping callback deliveries (double-tap on "add") cannot
// lose quantity updates; operations for different users never contend on the
// same lock.
type Store struct {
	mu    sync.RWMutex
	users map[int64]*userCart
}

type userCart struct {
	mu    sync.Mutex
	items map[string]int
}

// NewStore creates an empty cart store.
func NewStore() *Store {
	return &Store{users: make(map[int64]*userCart)}
}

func (s *Store) cart(userID int64, create bool) *userCart {
	s.mu.RLock()
	c := s.users[userID]
	s.mu.RUnlock()
	if c != nil || !create {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c = s.users[userID]; c == nil {
		c = &userCart{items: make(map[string]int)}
		s.users[userID] = c
	}
	return c
}

// Add increments the quantity of productID in the user's cart by one.
// availableStock is the product stock from a freshly fetched catalog snapshot.
// It returns the resulting quantity on success; on failure the cart is left
// unchanged and no entry is created.
func (s *Store) Add(userID int64, productID string, availableStock int) (int, error) {
	if availableStock <= 0 {
		return 0, ErrOutOfStock
	}

	c := s.cart(userID, true)
	c.mu.Lock()
	defer c.mu.Unlock()

	qty := c.items[productID]
	if qty >= availableStock {
		return qty, ErrStockLimit
	}
	c.items[productID] = qty + 1
	return qty + 1, nil
}

// RemoveLine deletes the product's entry entirely, regardless of quantity.
// It is a no-op if the product or the cart is absent.
func (s *Store) RemoveLine(userID int64, productID string) {
	c := s.cart(userID, false)
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.items, productID)
	c.mu.Unlock()
}

// Clear removes the user's cart mapping entirely; the next interaction starts
// from a fresh empty cart.
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	delete(s.users, userID)
	s.mu.Unlock()
}

// Snapshot returns a copy of the user's cart lines. The copy is safe to read
// while other updates mutate the live cart.
func (s *Store) Snapshot(userID int64) map[string]int {
	c := s.cart(userID, false)
	if c == nil {
		return map[string]int{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int, len(c.items))
	for id, qty := range c.items {
		out[id] = qty
	}
	return out
}

// Len reports the number of distinct lines in the user's cart.
func (s *Store) Len(userID int64) int {
	c := s.cart(userID, false)
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total sums price × quantity over every cart line whose product still resolves
// in the supplied catalog snapshot. Lines referencing products no longer present
// are silently skipped; that models product deletion between add and checkout.
func (s *Store) Total(userID int64, products map[string]catalog.Product) decimal.Decimal {
	total := decimal.Zero
	for id, qty := range s.Snapshot(userID) {
		p, ok := products[id]
		if !ok {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}
