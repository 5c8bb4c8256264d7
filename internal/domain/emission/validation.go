package emission

import (
	"math"
	"strings"
)

// ValidateUpdate validates an inline company edit.
func ValidateUpdate(req UpdateRequest) error {
	if req.ID <= 0 {
		return ErrInvalidInput
	}
	if req.Name == nil && req.Current == nil {
		return ErrInvalidInput
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return ErrInvalidInput
	}
	if req.Current != nil && !validAmount(*req.Current) {
		return ErrInvalidInput
	}
	return nil
}

// ValidateSectorLimit validates a sector-wide limit change.
func ValidateSectorLimit(sector string, limit float64) error {
	if strings.TrimSpace(sector) == "" {
		return ErrInvalidInput
	}
	if !validAmount(limit) || limit == 0 {
		return ErrInvalidLimit
	}
	return nil
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
