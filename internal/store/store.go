// Package store is the Postgres persistence layer behind the catalog API.
// It owns the row-to-domain mapping; callers only ever see catalog types.
package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("store: not found")
	// ErrCategoryInUse blocks deleting a category that still has products.
	ErrCategoryInUse = errors.New("store: category has products")
	// ErrDuplicateName is returned on unique constraint violations.
	ErrDuplicateName = errors.New("store: name already exists")
)

// Store wraps the catalog database handle.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type categoryRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Emoji       string    `db:"emoji"`
	Order       int       `db:"sort_order"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r categoryRow) toDomain() catalog.Category {
	return catalog.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Emoji:       r.Emoji,
		Order:       r.Order,
		IsActive:    r.IsActive,
	}
}

type productRow struct {
	ID            string          `db:"id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	Price         decimal.Decimal `db:"price"`
	Stock         int             `db:"stock"`
	LowStockAlert int             `db:"low_stock_alert"`
	CategoryID    string          `db:"category_id"`
	IsActive      bool            `db:"is_active"`
	ImageURL      string          `db:"image_url"`
	Order         int             `db:"sort_order"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`

	CategoryName        sql.NullString `db:"category_name"`
	CategoryDescription sql.NullString `db:"category_description"`
	CategoryEmoji       sql.NullString `db:"category_emoji"`
	CategoryOrder       sql.NullInt64  `db:"category_order"`
	CategoryActive      sql.NullBool   `db:"category_active"`
}

func (r productRow) toDomain() catalog.Product {
	p := catalog.Product{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Stock:         r.Stock,
		LowStockAlert: r.LowStockAlert,
		CategoryID:    r.CategoryID,
		IsActive:      r.IsActive,
		ImageURL:      r.ImageURL,
		Order:         r.Order,
	}
	if r.CategoryName.Valid {
		p.Category = &catalog.Category{
			ID:          r.CategoryID,
			Name:        r.CategoryName.String,
			Description: r.CategoryDescription.String,
			Emoji:       r.CategoryEmoji.String,
			Order:       int(r.CategoryOrder.Int64),
			IsActive:    r.CategoryActive.Bool,
		}
	}
	return p
}

// mapPQError translates driver-level constraint errors into store sentinels.
func mapPQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrDuplicateName
		case "23503":
			return ErrCategoryInUse
		}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
