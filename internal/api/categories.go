package api

import (
	"net/http"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/store"
)

type categoryPayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Emoji       *string `json:"emoji"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.store.Categories(r.Context())
	if err != nil {
		writeStoreError(w, err, "Erro ao buscar categorias")
		return
	}
	if r.URL.Query().Get("active") == "true" {
		filtered := categories[:0]
		for _, c := range categories {
			if c.IsActive {
				filtered = append(filtered, c)
			}
		}
		categories = filtered
	}
	writeJSON(w, http.StatusOK, categories)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var body categoryPayload
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Name == nil || *body.Name == "" {
		writeError(w, http.StatusBadRequest, "Nome da categoria é obrigatório")
		return
	}

	in := store.CategoryInput{Name: *body.Name, IsActive: true}
	applyCategory(&in, body)

	created, err := s.store.CreateCategory(r.Context(), in)
	if err != nil {
		writeStoreError(w, err, "Erro ao criar categoria")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var body categoryPayload
	if !decodeBody(w, r, &body) {
		return
	}

	categories, err := s.store.Categories(r.Context())
	if err != nil {
		writeStoreError(w, err, "Erro ao atualizar categoria")
		return
	}
	var in store.CategoryInput
	found := false
	for _, c := range categories {
		if c.ID == id {
			in = store.CategoryInput{
				Name:        c.Name,
				Description: c.Description,
				Emoji:       c.Emoji,
				Order:       c.Order,
				IsActive:    c.IsActive,
			}
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, "Não encontrado")
		return
	}
	applyCategory(&in, body)

	updated, err := s.store.UpdateCategory(r.Context(), id, in)
	if err != nil {
		writeStoreError(w, err, "Erro ao atualizar categoria")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		writeStoreError(w, err, "Erro ao deletar categoria")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// applyCategory overlays the provided payload fields; absent fields keep the
// values already in the input.
func applyCategory(in *store.CategoryInput, body categoryPayload) {
	if body.Name != nil {
		in.Name = *body.Name
	}
	if body.Description != nil {
		in.Description = *body.Description
	}
	if body.Emoji != nil {
		in.Emoji = *body.Emoji
	}
	if body.Order != nil {
		in.Order = *body.Order
	}
	if body.IsActive != nil {
		in.IsActive = *body.IsActive
	}
}
