package server

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/darkforge/internal/generator"
	"github.com/jonathan/darkforge/internal/profile"
	"github.com/jonathan/darkforge/internal/types"
)

// ErrStoreUnavailable is returned by endpoints that need persistence when
// the server runs without a database.
var ErrStoreUnavailable = errors.New("persistence is not configured")

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a stored record does not exist
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation *ErrValidation
		notFound   *ErrNotFound
		invalid    *types.InvalidProfileError
		loadErr    *profile.LoadError
	)
	switch {
	case errors.As(err, &validation), errors.As(err, &invalid), errors.As(err, &loadErr),
		errors.Is(err, generator.ErrInvalidTarget):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type fieldErrorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorBody struct {
	Error  string           `json:"error"`
	Fields []fieldErrorBody `json:"fields,omitempty"`
}

// writeError maps err to a status and writes it. Server-side failures are
// logged and reported without internal detail.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed", zap.Error(err))
		s.errorResponse(w, status, "internal server error")
		return
	}

	body := errorBody{Error: err.Error()}
	var (
		invalid    *types.InvalidProfileError
		validation *ErrValidation
	)
	if errors.As(err, &validation) {
		body.Fields = []fieldErrorBody{{Field: validation.Field, Message: validation.Message}}
	}
	if errors.As(err, &invalid) {
		for _, f := range invalid.Fields {
			body.Fields = append(body.Fields, fieldErrorBody{Field: string(f.Field), Message: f.Message})
		}
	}
	s.jsonResponse(w, status, body)
}
