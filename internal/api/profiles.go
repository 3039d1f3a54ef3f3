package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sublimation-calc/internal/engine"
	"sublimation-calc/internal/storage"
)

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.profiles.ListProfiles(r.Context(), chi.URLParam(r, "owner"))
	if err != nil {
		s.writeProfileError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profiles)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.GetProfile(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "name"))
	if err != nil {
		s.writeProfileError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// handleSaveProfile takes the same body as the evaluation routes; only
// Inputs are stored.
func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	_, in, ok := s.readRequest(w, r)
	if !ok {
		return
	}

	p, err := s.profiles.SaveProfile(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "name"), in)
	if err != nil {
		s.writeProfileError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.profiles.DeleteProfile(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "name")); err != nil {
		s.writeProfileError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrProfileNotFound):
		s.writeError(w, http.StatusNotFound, storage.ErrProfileNotFound.Error())
	case errors.Is(err, storage.ErrInvalidProfileName):
		s.writeInputError(w, engine.FieldError{Key: "name", Message: storage.ErrInvalidProfileName.Error()})
	default:
		s.writeInputError(w, err)
	}
}
