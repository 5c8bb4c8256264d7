package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/domain/compliance"
	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/domain/registration"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidInput = "invalid_input"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeInternal     = "internal"
)

// errBadRequest marks malformed request parameters or bodies.
var errBadRequest = errors.New("bad request")

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON writes payload as a JSON response.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteError maps err to an HTTP status and writes it as an ErrorResponse.
// Internal errors are logged and their detail is not exposed.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		loggerFrom(r).Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		message = "internal server error"
	}
	WriteJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, CodeUnauthorized
	case errors.Is(err, emission.ErrCompanyNotFound),
		errors.Is(err, emission.ErrSectorNotFound),
		errors.Is(err, registration.ErrRequestNotFound),
		errors.Is(err, query.ErrQueryNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, compliance.ErrUnknownStatus),
		errors.Is(err, emission.ErrInvalidInput),
		errors.Is(err, emission.ErrInvalidLimit),
		errors.Is(err, registration.ErrInvalidDecision),
		errors.Is(err, query.ErrInvalidStatus),
		errors.Is(err, query.ErrInvalidPriority),
		errors.Is(err, query.ErrInvalidInput),
		errors.Is(err, activity.ErrInvalidInput):
		return http.StatusBadRequest, CodeInvalidInput
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errBadRequest, err)
	}
	return nil
}

type loggerKey struct{}

func loggerFrom(r *http.Request) *slog.Logger {
	if logger, ok := r.Context().Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.New(slog.DiscardHandler)
}
