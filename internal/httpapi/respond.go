package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/siambooks/siambooks/internal/shared"
)

const dateFormat = "2006-01-02"

type errorResponse struct {
	Error string `json:"error"`
}

// decode parses a JSON body into dst and runs struct validation.
func (s *Server) decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := s.validate.Struct(dst); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

// renderError maps the core error taxonomy onto HTTP statuses. The
// adapter never mutates state on a failed call, so the client's view
// stays consistent with the 4xx it receives.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, shared.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shared.ErrDuplicateAccount):
		status = http.StatusConflict
	case errors.Is(err, shared.ErrInsufficientFunds),
		errors.Is(err, shared.ErrInsufficientPayment),
		errors.Is(err, shared.ErrCapacityExceeded):
		status = http.StatusUnprocessableEntity
	}

	s.logger.Warn("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err)
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// notFound wraps shared.ErrNotFound for lookups done in the adapter
// itself, so renderError maps them to 404 like core errors.
func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, shared.ErrNotFound)
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("date is required")
	}
	t, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}
