package registration

import "errors"

var (
	// ErrRequestNotFound indicates no pending request has the email.
	ErrRequestNotFound = errors.New("registration request not found")
	// ErrInvalidDecision indicates a decision other than approve or reject.
	ErrInvalidDecision = errors.New("decision must be approve or reject")
)
