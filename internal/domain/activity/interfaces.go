package activity

import "context"

// Repository provides persistence operations for activity entries.
type Repository interface {
	Log(ctx context.Context, entry *ActivityEntry) error
	List(ctx context.Context, opts ListActivityOptions) ([]ActivityEntry, error)
}

// Logger records administrative actions. Domain services depend on this
// rather than on the repository so entries are stamped consistently.
type Logger interface {
	LogActivity(ctx context.Context, entry *ActivityEntry) error
}
