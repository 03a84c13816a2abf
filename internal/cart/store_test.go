package cart

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
)

func TestAddIncrementsUpToStock(t *testing.T) {
	s := NewStore()

	for want := 1; want <= 3; want++ {
		qty, err := s.Add(7, "p1", 3)
		if err != nil {
			t.Fatalf("add %d: unexpected error: %v", want, err)
		}
		if qty != want {
			t.Fatalf("add %d: qty = %d, want %d", want, qty, want)
		}
	}

	qty, err := s.Add(7, "p1", 3)
	if !errors.Is(err, ErrStockLimit) {
		t.Fatalf("4th add: err = %v, want ErrStockLimit", err)
	}
	if qty != 3 {
		t.Fatalf("4th add: qty = %d, want 3", qty)
	}
	if got := s.Snapshot(7)["p1"]; got != 3 {
		t.Fatalf("cart qty after rejected add = %d, want 3", got)
	}
}

func TestAddOutOfStock(t *testing.T) {
	s := NewStore()

	_, err := s.Add(1, "p1", 0)
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err = %v, want ErrOutOfStock", err)
	}
	if s.Len(1) != 0 {
		t.Fatalf("rejected add must not create a cart line")
	}

	var cartErr *Error
	if !errors.As(err, &cartErr) || cartErr.Code() != "OUT_OF_STOCK" {
		t.Fatalf("code = %v, want OUT_OF_STOCK", err)
	}
}

func TestStockLimitErrorCode(t *testing.T) {
	s := NewStore()
	if _, err := s.Add(1, "p1", 1); err != nil {
		t.Fatalf("first add: %v", err)
	}
	_, err := s.Add(1, "p1", 1)
	var cartErr *Error
	if !errors.As(err, &cartErr) || cartErr.Code() != "STOCK_LIMIT_REACHED" {
		t.Fatalf("code = %v, want STOCK_LIMIT_REACHED", err)
	}
}

func TestStockDecreaseEnforcedOnNextAdd(t *testing.T) {
	s := NewStore()
	for i := 0; i < 3; i++ {
		if _, err := s.Add(1, "p1", 5); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	// Admin side dropped the stock to 2; the cart already holds 3.
	if _, err := s.Add(1, "p1", 2); !errors.Is(err, ErrStockLimit) {
		t.Fatalf("err = %v, want ErrStockLimit", err)
	}
	if got := s.Snapshot(1)["p1"]; got != 3 {
		t.Fatalf("existing qty must stay put, got %d", got)
	}
}

func TestRemoveLine(t *testing.T) {
	s := NewStore()
	if _, err := s.Add(1, "p1", 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Add(1, "p2", 5); err != nil {
		t.Fatalf("add: %v", err)
	}

	s.RemoveLine(1, "p1")
	snap := s.Snapshot(1)
	if _, ok := snap["p1"]; ok {
		t.Fatalf("p1 still present after remove")
	}
	if snap["p2"] != 1 {
		t.Fatalf("p2 qty = %d, want 1", snap["p2"])
	}

	// Removing something that is not there must not invent a cart.
	s.RemoveLine(99, "p1")
	if s.Len(99) != 0 {
		t.Fatalf("remove on absent user created a cart")
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	if _, err := s.Add(1, "p1", 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Clear(1)
	if s.Len(1) != 0 {
		t.Fatalf("cart not empty after clear")
	}
	if qty, err := s.Add(1, "p1", 5); err != nil || qty != 1 {
		t.Fatalf("add after clear: qty=%d err=%v, want 1 nil", qty, err)
	}
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	s := NewStore()
	if _, err := s.Add(1, "p1", 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Add(2, "p1", 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	s.Clear(1)
	if got := s.Snapshot(2)["p1"]; got != 1 {
		t.Fatalf("user 2 cart affected by user 1 clear, qty = %d", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewStore()
	if _, err := s.Add(1, "p1", 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	snap := s.Snapshot(1)
	snap["p1"] = 99
	if got := s.Snapshot(1)["p1"]; got != 1 {
		t.Fatalf("mutating a snapshot leaked into the store, qty = %d", got)
	}
}

func TestConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	s := NewStore()
	const workers = 32
	const stock = workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := s.Add(1, "p1", stock); err != nil {
				t.Errorf("add: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := s.Snapshot(1)["p1"]; got != workers {
		t.Fatalf("qty = %d, want %d (lost updates)", got, workers)
	}
}

func TestConcurrentAddsRespectStockLimit(t *testing.T) {
	s := NewStore()
	const workers = 16
	const stock = 3

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = s.Add(1, "p1", stock)
		}()
	}
	wg.Wait()

	if got := s.Snapshot(1)["p1"]; got != stock {
		t.Fatalf("qty = %d, want %d", got, stock)
	}
}

func TestTotalSkipsUnresolvedLines(t *testing.T) {
	s := NewStore()
	for i := 0; i < 2; i++ {
		if _, err := s.Add(1, "p1", 5); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if _, err := s.Add(1, "deleted", 5); err != nil {
		t.Fatalf("add: %v", err)
	}

	products := map[string]catalog.Product{
		"p1": {ID: "p1", Price: decimal.RequireFromString("9.90")},
	}
	got := s.Total(1, products)
	want := decimal.RequireFromString("19.80")
	if !got.Equal(want) {
		t.Fatalf("total = %s, want %s", got, want)
	}
}

func TestTotalEmptyCart(t *testing.T) {
	s := NewStore()
	if got := s.Total(1, nil); !got.Equal(decimal.Zero) {
		t.Fatalf("total = %s, want 0", got)
	}
}
