package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"sublimation-calc/internal/engine"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []engine.FieldError `json:"fields,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

// writeInputError answers 422 for field errors and 500 for anything else.
func (s *Server) writeInputError(w http.ResponseWriter, err error) {
	var list engine.ValidationErrors
	if errors.As(err, &list) {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid inputs", Fields: list})
		return
	}
	var single engine.FieldError
	if errors.As(err, &single) {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid inputs", Fields: []engine.FieldError{single}})
		return
	}

	s.logger.Error("Request failed", zap.Error(err))
	s.writeError(w, http.StatusInternalServerError, "internal error")
}

// decode reads a JSON body into v. Malformed JSON is a 400, well-formed JSON
// of the wrong shape is a 422. An empty body leaves v untouched.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	err := dec.Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &typeErr):
		s.writeError(w, http.StatusUnprocessableEntity, "invalid data: "+err.Error())
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		s.writeError(w, http.StatusBadRequest, "json syntax malformation")
	default:
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
	}
	return false
}
