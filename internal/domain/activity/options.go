package activity

import "time"

// ListActivityOptions filters the audit log. Nil filters match everything;
// a zero Limit returns every matching entry.
type ListActivityOptions struct {
	Subject      *string
	ActivityType *ActivityType
	Actor        *string
	// Since keeps entries created at or after the given instant.
	Since  *time.Time
	Limit  int
	Offset int
}
