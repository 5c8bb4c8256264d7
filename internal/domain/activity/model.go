package activity

import "time"

// ActivityType represents the type of administrative action.
type ActivityType string

const (
	TypeCompanyUpdated       ActivityType = "company_updated"
	TypeSectorLimitSet       ActivityType = "sector_limit_set"
	TypeRegistrationApproved ActivityType = "registration_approved"
	TypeRegistrationRejected ActivityType = "registration_rejected"
	TypeQueryUpdated         ActivityType = "query_updated"
	TypeQueryDeleted         ActivityType = "query_deleted"
)

// ActivityEntry represents an event in the audit log.
type ActivityEntry struct {
	ID           string       `json:"id"`
	Actor        string       `json:"actor"`
	ActivityType ActivityType `json:"type"`
	Subject      string       `json:"subject"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
