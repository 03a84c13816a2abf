package api

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/store"
)

type productPayload struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Stock         *int             `json:"stock"`
	LowStockAlert *int             `json:"lowStockAlert"`
	CategoryID    *string          `json:"categoryId"`
	IsActive      *bool            `json:"isActive"`
	ImageURL      *string          `json:"imageUrl"`
	Order         *int             `json:"order"`
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := store.ProductQuery{
		CategoryID: r.URL.Query().Get("categoryId"),
		LowStock:   r.URL.Query().Get("lowStock") == "true",
	}
	if active := r.URL.Query().Get("active"); active != "" {
		v := active == "true"
		q.Active = &v
	}

	products, err := s.store.Products(r.Context(), q)
	if err != nil {
		writeStoreError(w, err, "Erro ao buscar produtos")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var body productPayload
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Name == nil || *body.Name == "" || body.Price == nil ||
		body.CategoryID == nil || *body.CategoryID == "" {
		writeError(w, http.StatusBadRequest, "Nome, preço e categoria são obrigatórios")
		return
	}

	in := store.ProductInput{
		Name:          *body.Name,
		Price:         *body.Price,
		CategoryID:    *body.CategoryID,
		LowStockAlert: 5,
		IsActive:      true,
	}
	applyProduct(&in, body)

	created, err := s.store.CreateProduct(r.Context(), in)
	if err != nil {
		writeStoreError(w, err, "Erro ao criar produto")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var body productPayload
	if !decodeBody(w, r, &body) {
		return
	}

	existing, err := s.store.Product(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "Erro ao atualizar produto")
		return
	}
	in := store.ProductInput{
		Name:          existing.Name,
		Description:   existing.Description,
		Price:         existing.Price,
		Stock:         existing.Stock,
		LowStockAlert: existing.LowStockAlert,
		CategoryID:    existing.CategoryID,
		IsActive:      existing.IsActive,
		ImageURL:      existing.ImageURL,
		Order:         existing.Order,
	}
	applyProduct(&in, body)

	updated, err := s.store.UpdateProduct(r.Context(), id, in)
	if err != nil {
		writeStoreError(w, err, "Erro ao atualizar produto")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteProduct(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err, "Erro ao deletar produto")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

type stockPayload struct {
	Stock     *int   `json:"stock"`
	Operation string `json:"operation"`
}

func (s *Server) adjustStock(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var body stockPayload
	if !decodeBody(w, r, &body) {
		return
	}

	op := store.StockOp(body.Operation)
	if body.Operation == "" {
		op = store.StockSet
	}
	amount := 1
	if body.Stock != nil {
		amount = *body.Stock
	} else if op == store.StockSet {
		writeError(w, http.StatusBadRequest, "Stock é obrigatório")
		return
	}

	updated, err := s.store.AdjustStock(r.Context(), id, op, amount)
	if err != nil {
		writeStoreError(w, err, "Erro ao atualizar stock")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func applyProduct(in *store.ProductInput, body productPayload) {
	if body.Name != nil {
		in.Name = *body.Name
	}
	if body.Description != nil {
		in.Description = *body.Description
	}
	if body.Price != nil {
		in.Price = *body.Price
	}
	if body.Stock != nil {
		in.Stock = *body.Stock
	}
	if body.LowStockAlert != nil {
		in.LowStockAlert = *body.LowStockAlert
	}
	if body.CategoryID != nil {
		in.CategoryID = *body.CategoryID
	}
	if body.IsActive != nil {
		in.IsActive = *body.IsActive
	}
	if body.ImageURL != nil {
		in.ImageURL = *body.ImageURL
	}
	if body.Order != nil {
		in.Order = *body.Order
	}
}
