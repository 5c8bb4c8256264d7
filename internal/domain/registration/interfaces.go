package registration

import "context"

// Repository provides persistence for pending registration requests.
type Repository interface {
	List(ctx context.Context) ([]Request, error)
	Get(ctx context.Context, email string) (*Request, error)
	Delete(ctx context.Context, email string) error
}
