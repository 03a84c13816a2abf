package api

import "net/http"

func (s *Server) dashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.DashboardStats(r.Context())
	if err != nil {
		writeStoreError(w, err, "Erro ao buscar estatísticas")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
