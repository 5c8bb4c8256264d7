package query

import "errors"

var (
	// ErrQueryNotFound indicates the query doesn't exist.
	ErrQueryNotFound = errors.New("query not found")
	// ErrInvalidStatus indicates an unknown query status.
	ErrInvalidStatus = errors.New("invalid query status")
	// ErrInvalidPriority indicates an unknown query priority.
	ErrInvalidPriority = errors.New("invalid query priority")
	// ErrInvalidInput indicates invalid query input.
	ErrInvalidInput = errors.New("invalid query input")
)
