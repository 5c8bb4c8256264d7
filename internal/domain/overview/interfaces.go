package overview

import "context"

// Repository provides the seeded dashboard datasets.
type Repository interface {
	Cards(ctx context.Context) ([]StatCard, error)
	Trend(ctx context.Context) ([]TrendPoint, error)
	Hotspots(ctx context.Context) ([]Hotspot, error)
	RecentSubmissions(ctx context.Context) ([]Submission, error)
}
