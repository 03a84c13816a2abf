package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/logger"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/store"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.API.Warn("response encode failed",
			slog.String("event", "api.encode"),
			slog.String("err", err.Error()),
		)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeStoreError maps store sentinels onto HTTP statuses; anything
// unrecognized is a plain 500 with the given fallback message.
func writeStoreError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Não encontrado")
	case errors.Is(err, store.ErrCategoryInUse):
		writeError(w, http.StatusBadRequest, "Não é possível deletar categoria com produtos existentes")
	case errors.Is(err, store.ErrDuplicateName):
		writeError(w, http.StatusConflict, "Nome já existe")
	default:
		logger.API.Error("store call failed",
			slog.String("event", "api.store"),
			slog.String("err", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return false
	}
	return true
}
