package catalog

import "github.com/shopspring/decimal"

// Category is a read-only catalog grouping sourced from the admin API.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
}

// Product is a read-only catalog item; stock and price are authoritative on the API side.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	LowStockAlert int             `json:"lowStockAlert"`
	CategoryID    string          `json:"categoryId,omitempty"`
	Category      *Category       `json:"category,omitempty"`
	IsActive      bool            `json:"isActive"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	Order         int             `json:"order"`
}

// Available reports whether the product can still be added to a cart.
func (p Product) Available() bool {
	return p.Stock > 0
}

// DashboardStats is the aggregate snapshot served by the admin dashboard.
type DashboardStats struct {
	TotalProducts   int             `json:"totalProducts"`
	TotalCategories int             `json:"totalCategories"`
	TotalOrders     int             `json:"totalOrders"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	LowStockItems   int             `json:"lowStockItems"`
	PendingOrders   int             `json:"pendingOrders"`
}

// ProductIndex builds an id keyed lookup over a catalog snapshot.
func ProductIndex(products []Product) map[string]Product {
	idx := make(map[string]Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}

// FindProduct locates a product by id within a snapshot.
func FindProduct(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindCategory locates a category by id within a snapshot.
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
