package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCategoriesDecodeAndQuery(t *testing.T) {
	var gotPath, gotQuery, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotReqID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"c1","name":"Bebidas","emoji":"🥤","order":1,"isActive":true},
			{"id":"c2","name":"Snacks","order":2,"isActive":false}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	categories, err := c.Categories(context.Background(), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/categories" {
		t.Fatalf("path = %q, want /categories", gotPath)
	}
	if gotQuery != "active=true" {
		t.Fatalf("query = %q, want active=true", gotQuery)
	}
	if gotReqID == "" {
		t.Fatalf("X-Request-ID header not set")
	}
	if len(categories) != 2 {
		t.Fatalf("len = %d, want 2", len(categories))
	}
	if categories[0].Emoji != "🥤" || !categories[0].IsActive {
		t.Fatalf("first category decoded wrong: %+v", categories[0])
	}
}

func TestProductsFilterEncoding(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[{"id":"p1","name":"Cola","price":"2.50","stock":4,"categoryId":"c1","isActive":true}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	products, err := c.Products(context.Background(), ProductFilter{
		CategoryID: "c1",
		ActiveOnly: true,
		LowStock:   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "active=true&categoryId=c1&lowStock=true" {
		t.Fatalf("query = %q", gotQuery)
	}
	if len(products) != 1 {
		t.Fatalf("len = %d, want 1", len(products))
	}
	if !products[0].Price.Equal(decimal.RequireFromString("2.50")) {
		t.Fatalf("price = %s, want 2.50", products[0].Price)
	}
	if !products[0].Available() {
		t.Fatalf("product with stock 4 must be available")
	}
}

func TestStatsDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dashboard/stats" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"totalProducts":12,"totalCategories":3,"totalOrders":40,"totalRevenue":199.5,"lowStockItems":2,"pendingOrders":5}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	stats, err := c.Stats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalProducts != 12 || stats.PendingOrders != 5 {
		t.Fatalf("stats decoded wrong: %+v", stats)
	}
	if !stats.TotalRevenue.Equal(decimal.RequireFromString("199.5")) {
		t.Fatalf("revenue = %s, want 199.5", stats.TotalRevenue)
	}
}

func TestServerErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Categories(context.Background(), false)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestTransportErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, time.Second)
	_, err := c.Products(context.Background(), ProductFilter{})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestMalformedPayloadMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Categories(context.Background(), false)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestRetryOnRetryableStatus(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	if _, err := c.Categories(context.Background(), false); err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}
}

func TestFindHelpers(t *testing.T) {
	products := []Product{{ID: "a"}, {ID: "b"}}
	if _, ok := FindProduct(products, "b"); !ok {
		t.Fatalf("FindProduct missed existing id")
	}
	if _, ok := FindProduct(products, "zz"); ok {
		t.Fatalf("FindProduct found a ghost")
	}

	categories := []Category{{ID: "c1"}}
	if _, ok := FindCategory(categories, "c1"); !ok {
		t.Fatalf("FindCategory missed existing id")
	}

	idx := ProductIndex(products)
	if len(idx) != 2 || idx["a"].ID != "a" {
		t.Fatalf("ProductIndex wrong: %+v", idx)
	}
}
