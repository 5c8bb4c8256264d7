package mcp

import (
	"errors"
	"fmt"

	"github.com/ecotrack/govdash/internal/domain/compliance"
	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/domain/registration"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, emission.ErrCompanyNotFound):
		return &APIError{Code: "COMPANY_NOT_FOUND", Message: "company not found", RecoveryHint: "Call list_companies for valid ids"}
	case errors.Is(err, emission.ErrSectorNotFound):
		return &APIError{Code: "SECTOR_NOT_FOUND", Message: "no company belongs to the sector", RecoveryHint: "Call list_sectors for valid sectors"}
	case errors.Is(err, emission.ErrInvalidLimit):
		return &APIError{Code: "INVALID_LIMIT", Message: "limit must be greater than zero"}
	case errors.Is(err, emission.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "name must be non-empty and emissions non-negative"}
	case errors.Is(err, compliance.ErrUnknownStatus):
		return &APIError{Code: "INVALID_STATUS", Message: err.Error(), RecoveryHint: "Use all, compliant, approaching or exceeded"}
	case errors.Is(err, registration.ErrRequestNotFound):
		return &APIError{Code: "REQUEST_NOT_FOUND", Message: "no pending registration for that email", RecoveryHint: "Call list_registrations"}
	case errors.Is(err, registration.ErrInvalidDecision):
		return &APIError{Code: "INVALID_DECISION", Message: "decision must be approve or reject"}
	case errors.Is(err, query.ErrQueryNotFound):
		return &APIError{Code: "QUERY_NOT_FOUND", Message: "query not found", RecoveryHint: "Call list_queries for valid ids"}
	case errors.Is(err, query.ErrInvalidStatus):
		return &APIError{Code: "INVALID_STATUS", Message: "status must be Open, In Progress or Resolved"}
	case errors.Is(err, query.ErrInvalidPriority):
		return &APIError{Code: "INVALID_PRIORITY", Message: "priority must be High, Medium or Low"}
	case errors.Is(err, query.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: "provide at least one field to update"}
	default:
		return nil
	}
}

// toolError converts a service error into the error reported by a tool.
func toolError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
