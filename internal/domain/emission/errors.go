package emission

import "errors"

var (
	// ErrCompanyNotFound indicates the company doesn't exist.
	ErrCompanyNotFound = errors.New("company not found")
	// ErrSectorNotFound indicates no company belongs to the sector.
	ErrSectorNotFound = errors.New("sector not found")
	// ErrInvalidInput indicates invalid company input.
	ErrInvalidInput = errors.New("invalid company input")
	// ErrInvalidLimit indicates a non-positive emission limit.
	ErrInvalidLimit = errors.New("emission limit must be positive")
)
