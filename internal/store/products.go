package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
)

const productSelect = `
SELECT p.id, p.name, p.description, p.price, p.stock, p.low_stock_alert,
       p.category_id, p.is_active, p.image_url, p.sort_order, p.created_at, p.updated_at,
       c.name AS category_name, c.description AS category_description,
       c.emoji AS category_emoji, c.sort_order AS category_order, c.is_active AS category_active
  FROM products p
  LEFT JOIN categories c ON c.id = p.category_id`

// ProductQuery narrows the product listing. Zero value lists everything.
type ProductQuery struct {
	CategoryID string
	Active     *bool
	LowStock   bool
}

// ProductInput carries the writable fields for create and update.
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	Stock         int
	LowStockAlert int
	CategoryID    string
	IsActive      bool
	ImageURL      string
	Order         int
}

// Products lists products matching q, each with its category joined in,
// ordered by sort order.
func (s *Store) Products(ctx context.Context, q ProductQuery) ([]catalog.Product, error) {
	var (
		conds []string
		args  []any
	)
	if q.CategoryID != "" {
		args = append(args, q.CategoryID)
		conds = append(conds, "p.category_id = $"+strconv.Itoa(len(args)))
	}
	if q.Active != nil {
		args = append(args, *q.Active)
		conds = append(conds, "p.is_active = $"+strconv.Itoa(len(args)))
	}
	if q.LowStock {
		conds = append(conds, "p.stock <= p.low_stock_alert")
	}

	query := productSelect
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY p.sort_order ASC, p.name ASC"

	var rows []productRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]catalog.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// Product fetches a single product by ID.
func (s *Store) Product(ctx context.Context, id string) (catalog.Product, error) {
	var row productRow
	err := s.db.GetContext(ctx, &row, productSelect+" WHERE p.id = $1", id)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("get product: %w", mapPQError(err))
	}
	return row.toDomain(), nil
}

// CreateProduct inserts a new product and returns it with its category joined.
func (s *Store) CreateProduct(ctx context.Context, in ProductInput) (catalog.Product, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price, stock, low_stock_alert,
		                       category_id, is_active, image_url, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, in.Name, in.Description, in.Price, in.Stock, in.LowStockAlert,
		in.CategoryID, in.IsActive, in.ImageURL, in.Order)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("create product: %w", mapPQError(err))
	}
	return s.Product(ctx, id)
}

// UpdateProduct overwrites the writable fields of an existing product.
func (s *Store) UpdateProduct(ctx context.Context, id string, in ProductInput) (catalog.Product, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE products
		 SET name = $2, description = $3, price = $4, stock = $5, low_stock_alert = $6,
		     category_id = $7, is_active = $8, image_url = $9, sort_order = $10, updated_at = now()
		 WHERE id = $1`,
		id, in.Name, in.Description, in.Price, in.Stock, in.LowStockAlert,
		in.CategoryID, in.IsActive, in.ImageURL, in.Order)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("update product: %w", mapPQError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return catalog.Product{}, ErrNotFound
	}
	return s.Product(ctx, id)
}

// DeleteProduct removes a product.
func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", mapPQError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// StockOp selects how AdjustStock combines the amount with the current stock.
type StockOp string

const (
	StockAdd      StockOp = "add"
	StockSubtract StockOp = "subtract"
	StockSet      StockOp = "set"
)

// AdjustStock applies a stock operation atomically. Subtract clamps at zero.
func (s *Store) AdjustStock(ctx context.Context, id string, op StockOp, amount int) (catalog.Product, error) {
	var expr string
	switch op {
	case StockAdd:
		expr = "stock + $2"
	case StockSubtract:
		expr = "GREATEST(0, stock - $2)"
	case StockSet:
		expr = "$2"
	default:
		return catalog.Product{}, fmt.Errorf("adjust stock: unknown operation %q", op)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE products SET stock = `+expr+`, updated_at = now() WHERE id = $1`,
		id, amount)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("adjust stock: %w", mapPQError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return catalog.Product{}, ErrNotFound
	}
	return s.Product(ctx, id)
}
