package store

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
)

// DashboardStats aggregates the numbers shown on the admin dashboard and in
// the bot's stats screen. Revenue only counts completed orders that were paid.
func (s *Store) DashboardStats(ctx context.Context) (catalog.DashboardStats, error) {
	const query = `
SELECT
  (SELECT COUNT(*) FROM products WHERE is_active) AS total_products,
  (SELECT COUNT(*) FROM categories WHERE is_active) AS total_categories,
  (SELECT COUNT(*) FROM orders) AS total_orders,
  (SELECT COALESCE(SUM(total_amount), 0) FROM orders
    WHERE status = 'COMPLETED' AND payment_status = 'PAID') AS total_revenue,
  (SELECT COUNT(*) FROM products WHERE is_active AND stock <= low_stock_alert) AS low_stock_items,
  (SELECT COUNT(*) FROM orders WHERE status = 'PENDING') AS pending_orders`

	var row struct {
		TotalProducts   int             `db:"total_products"`
		TotalCategories int             `db:"total_categories"`
		TotalOrders     int             `db:"total_orders"`
		TotalRevenue    decimal.Decimal `db:"total_revenue"`
		LowStockItems   int             `db:"low_stock_items"`
		PendingOrders   int             `db:"pending_orders"`
	}
	if err := s.db.GetContext(ctx, &row, query); err != nil {
		return catalog.DashboardStats{}, fmt.Errorf("dashboard stats: %w", err)
	}

	return catalog.DashboardStats{
		TotalProducts:   row.TotalProducts,
		TotalCategories: row.TotalCategories,
		TotalOrders:     row.TotalOrders,
		TotalRevenue:    row.TotalRevenue,
		LowStockItems:   row.LowStockItems,
		PendingOrders:   row.PendingOrders,
	}, nil
}
