package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
)

const categoryColumns = `id, name, description, emoji, sort_order, is_active, created_at, updated_at`

// CategoryInput carries the writable fields for create and update.
type CategoryInput struct {
	Name        string
	Description string
	Emoji       string
	Order       int
	IsActive    bool
}

// Categories lists every category ordered by sort order.
func (s *Store) Categories(ctx context.Context) ([]catalog.Category, error) {
	var rows []categoryRow
	err := s.db.SelectContext(ctx, &rows,
		`SELECT `+categoryColumns+` FROM categories ORDER BY sort_order ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]catalog.Category, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

// CreateCategory inserts a new category and returns it.
func (s *Store) CreateCategory(ctx context.Context, in CategoryInput) (catalog.Category, error) {
	var row categoryRow
	err := s.db.GetContext(ctx, &row,
		`INSERT INTO categories (id, name, description, emoji, sort_order, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+categoryColumns,
		uuid.NewString(), in.Name, in.Description, in.Emoji, in.Order, in.IsActive)
	if err != nil {
		return catalog.Category{}, fmt.Errorf("create category: %w", mapPQError(err))
	}
	return row.toDomain(), nil
}

// UpdateCategory overwrites the writable fields of an existing category.
func (s *Store) UpdateCategory(ctx context.Context, id string, in CategoryInput) (catalog.Category, error) {
	var row categoryRow
	err := s.db.GetContext(ctx, &row,
		`UPDATE categories
		 SET name = $2, description = $3, emoji = $4, sort_order = $5, is_active = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+categoryColumns,
		id, in.Name, in.Description, in.Emoji, in.Order, in.IsActive)
	if err != nil {
		return catalog.Category{}, fmt.Errorf("update category: %w", mapPQError(err))
	}
	return row.toDomain(), nil
}

// DeleteCategory removes a category. Categories that still have products are
// protected so the storefront never shows orphaned lines.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	var productCount int
	err := s.db.GetContext(ctx, &productCount,
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("count category products: %w", err)
	}
	if productCount > 0 {
		return ErrCategoryInUse
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", mapPQError(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
