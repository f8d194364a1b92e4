package api

import (
	"net/http"

	"github.com/vritti-hub/slicingpie/internal/service"
)

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	var req service.ForecastInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	summary, err := s.equity.Forecast(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	forecastsComputed.Inc()
	writeJSON(w, http.StatusOK, summary)
}
