package query

import "context"

// Repository provides persistence for query tickets.
type Repository interface {
	List(ctx context.Context) ([]Query, error)
	Get(ctx context.Context, id int64) (*Query, error)
	Update(ctx context.Context, q *Query) error
	Delete(ctx context.Context, id int64) error
}
