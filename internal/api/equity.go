package api

import "net/http"

func (s *Server) handleEquitySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.equity.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	equityRecomputations.Inc()
	writeJSON(w, http.StatusOK, summary)
}
