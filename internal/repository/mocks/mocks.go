package mocks

import (
	"context"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/domain/overview"
	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/domain/registration"
	"github.com/stretchr/testify/mock"
)

// CompanyRepository is a mock for emission.Repository.
type CompanyRepository struct {
	mock.Mock
}

func (m *CompanyRepository) List(ctx context.Context) ([]emission.Company, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]emission.Company); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompanyRepository) Get(ctx context.Context, id int64) (*emission.Company, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*emission.Company); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CompanyRepository) Update(ctx context.Context, c *emission.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CompanyRepository) SetSectorLimit(ctx context.Context, sector string, limit float64) (int64, error) {
	args := m.Called(ctx, sector, limit)
	return args.Get(0).(int64), args.Error(1)
}

func (m *CompanyRepository) ListBudgets(ctx context.Context) ([]emission.SectorBudget, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]emission.SectorBudget); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// RegistrationRepository is a mock for registration.Repository.
type RegistrationRepository struct {
	mock.Mock
}

func (m *RegistrationRepository) List(ctx context.Context) ([]registration.Request, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]registration.Request); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RegistrationRepository) Get(ctx context.Context, email string) (*registration.Request, error) {
	args := m.Called(ctx, email)
	if req, ok := args.Get(0).(*registration.Request); ok {
		return req, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RegistrationRepository) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// QueryRepository is a mock for query.Repository.
type QueryRepository struct {
	mock.Mock
}

func (m *QueryRepository) List(ctx context.Context) ([]query.Query, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]query.Query); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *QueryRepository) Get(ctx context.Context, id int64) (*query.Query, error) {
	args := m.Called(ctx, id)
	if q, ok := args.Get(0).(*query.Query); ok {
		return q, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *QueryRepository) Update(ctx context.Context, q *query.Query) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *QueryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// OverviewRepository is a mock for overview.Repository.
type OverviewRepository struct {
	mock.Mock
}

func (m *OverviewRepository) Cards(ctx context.Context) ([]overview.StatCard, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]overview.StatCard); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OverviewRepository) Trend(ctx context.Context) ([]overview.TrendPoint, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]overview.TrendPoint); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OverviewRepository) Hotspots(ctx context.Context) ([]overview.Hotspot, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]overview.Hotspot); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OverviewRepository) RecentSubmissions(ctx context.Context) ([]overview.Submission, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]overview.Submission); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
