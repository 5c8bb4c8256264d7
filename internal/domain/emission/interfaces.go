package emission

import "context"

// Repository provides persistence for companies and sector budgets.
type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, id int64) (*Company, error)
	Update(ctx context.Context, c *Company) error
	SetSectorLimit(ctx context.Context, sector string, limit float64) (int64, error)
	ListBudgets(ctx context.Context) ([]SectorBudget, error)
}
