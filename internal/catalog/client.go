package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"log/slog"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/logger"

	"context"
)

const component = "service.catalog"

// ErrUnavailable signals the collaborator could not serve the request.
// Callers must treat it as "no data" for display purposes; it is never fatal.
var ErrUnavailable = errors.New("catalog service unavailable")

// ErrNotFound signals a catalog object the caller asked for by ID does not
// exist in the fetched listing. The service itself responded fine.
var ErrNotFound = errors.New("catalog object not found")

// Client fetches catalog and dashboard data from the admin API.
// It holds no state; every call is a fresh fetch.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a catalog client for the given API base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    newHTTPClient(timeout),
	}
}

// ProductFilter narrows a product listing request.
type ProductFilter struct {
	CategoryID string
	ActiveOnly bool
	LowStock   bool
}

// Categories lists catalog categories, optionally only active ones.
func (c *Client) Categories(ctx context.Context, activeOnly bool) ([]Category, error) {
	q := url.Values{}
	if activeOnly {
		q.Set("active", "true")
	}
	var out []Category
	if err := c.getJSON(ctx, "/categories", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Products lists catalog products matching the filter.
func (c *Client) Products(ctx context.Context, f ProductFilter) ([]Product, error) {
	q := url.Values{}
	if f.ActiveOnly {
		q.Set("active", "true")
	}
	if f.CategoryID != "" {
		q.Set("categoryId", f.CategoryID)
	}
	if f.LowStock {
		q.Set("lowStock", "true")
	}
	var out []Product
	if err := c.getJSON(ctx, "/products", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Stats fetches the dashboard aggregate snapshot.
func (c *Client) Stats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	if err := c.getJSON(ctx, "/dashboard/stats", nil, &out); err != nil {
		return DashboardStats{}, err
	}
	return out, nil
}

// getJSON performs a GET against the API and decodes the response into out.
// Transport failures, non-2xx statuses, and malformed payloads all collapse
// into ErrUnavailable so the dispatch path degrades instead of propagating
// raw transport errors.
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	target := c.baseURL + path
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn(ctx, component, "fetch.fail",
			slog.String("path", path),
			slog.String("request_id", reqID),
			slog.Duration("duration", logger.Took(start)),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return fmt.Errorf("%w: GET %s: %v", ErrUnavailable, path, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn(ctx, component, "fetch.fail",
			slog.String("path", path),
			slog.String("request_id", reqID),
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", logger.Took(start)),
		)
		return fmt.Errorf("%w: GET %s: status %s", ErrUnavailable, path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Warn(ctx, component, "fetch.decode_fail",
			slog.String("path", path),
			slog.String("request_id", reqID),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		return fmt.Errorf("%w: GET %s: decode: %v", ErrUnavailable, path, err)
	}

	logger.Debug(ctx, component, "fetch",
		slog.String("path", path),
		slog.String("request_id", reqID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", logger.Took(start)),
	)
	return nil
}
