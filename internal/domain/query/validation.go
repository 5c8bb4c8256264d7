package query

import "strings"

// ParseStatusFilter parses a list status filter. "" and "All" match every
// status; anything else must be a known status.
func ParseStatusFilter(raw string) (Status, error) {
	if raw == "" || strings.EqualFold(raw, "all") {
		return "", nil
	}
	s := Status(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ValidateUpdate validates a query update request.
func ValidateUpdate(req UpdateRequest) error {
	if req.ID <= 0 {
		return ErrInvalidInput
	}
	if req.Status == nil && req.Priority == nil && req.SLA == nil && req.Description == nil {
		return ErrInvalidInput
	}
	if req.Status != nil && !req.Status.Valid() {
		return ErrInvalidStatus
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return ErrInvalidPriority
	}
	if req.SLA != nil && strings.TrimSpace(*req.SLA) == "" {
		return ErrInvalidInput
	}
	return nil
}
