// Package api exposes the catalog over HTTP for the web panel and the bot.
// Responses use the same JSON shapes the bot-side client decodes.
package api

import (
	"context"
	"net/http"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/catalog"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/logger"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/store"
)

// CatalogStore is the persistence surface the API serves. *store.Store
// implements it against Postgres.
type CatalogStore interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	CreateCategory(ctx context.Context, in store.CategoryInput) (catalog.Category, error)
	UpdateCategory(ctx context.Context, id string, in store.CategoryInput) (catalog.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	Products(ctx context.Context, q store.ProductQuery) ([]catalog.Product, error)
	Product(ctx context.Context, id string) (catalog.Product, error)
	CreateProduct(ctx context.Context, in store.ProductInput) (catalog.Product, error)
	UpdateProduct(ctx context.Context, id string, in store.ProductInput) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, op store.StockOp, amount int) (catalog.Product, error)

	DashboardStats(ctx context.Context) (catalog.DashboardStats, error)
}

// Server routes catalog API requests to the store.
type Server struct {
	store CatalogStore
}

func New(st CatalogStore) *Server {
	return &Server{store: st}
}

// Handler builds the full route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/categories", s.listCategories)
	mux.HandleFunc("POST /api/categories", s.createCategory)
	mux.HandleFunc("PUT /api/categories/{id}", s.updateCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", s.deleteCategory)

	mux.HandleFunc("GET /api/products", s.listProducts)
	mux.HandleFunc("POST /api/products", s.createProduct)
	mux.HandleFunc("PUT /api/products/{id}", s.updateProduct)
	mux.HandleFunc("DELETE /api/products/{id}", s.deleteProduct)
	mux.HandleFunc("PATCH /api/products/{id}/stock", s.adjustStock)

	mux.HandleFunc("GET /api/dashboard/stats", s.dashboardStats)

	return requestLog(mux)
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// requestLog assigns a request ID when the caller did not send one and logs
// a summary line per request.
func requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", rid)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		logger.API.Info("request handled",
			slog.String("event", "api.request"),
			slog.String("rid", rid),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", logger.RoundMS(time.Since(start))),
		)
	})
}
