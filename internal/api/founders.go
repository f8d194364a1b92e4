package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vritti-hub/slicingpie/internal/middleware"
	"github.com/vritti-hub/slicingpie/internal/service"
)

func (s *Server) handleListFounders(w http.ResponseWriter, r *http.Request) {
	founders, err := s.founders.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"founders": founders})
}

func (s *Server) handleCreateFounder(w http.ResponseWriter, r *http.Request) {
	var req service.FounderUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	founder, err := s.founders.Create(r.Context(), middleware.GetCapability(r.Context()), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, founder)
}

func (s *Server) handleUpdateFounder(w http.ResponseWriter, r *http.Request) {
	var req service.FounderUpdate
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	founder, err := s.founders.Update(r.Context(), middleware.GetCapability(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, founder)
}

func (s *Server) handleDeleteFounder(w http.ResponseWriter, r *http.Request) {
	if err := s.founders.Delete(r.Context(), middleware.GetCapability(r.Context()), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
