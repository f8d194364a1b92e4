package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vritti-hub/slicingpie/internal/middleware"
	"github.com/vritti-hub/slicingpie/internal/models"
	"github.com/vritti-hub/slicingpie/internal/service"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req service.CategoryUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	id := models.CategoryID(chi.URLParam(r, "id"))
	category, err := s.categories.Update(r.Context(), middleware.GetCapability(r.Context()), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}
