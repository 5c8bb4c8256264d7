package query_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/repository"
	"github.com/ecotrack/govdash/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedQueries() []query.Query {
	return []query.Query{
		{ID: 1, Company: "GreenTech Industries", Category: "Manufacturing", Status: query.StatusOpen, Priority: query.PriorityHigh, SubmittedDate: "2025-01-15", SLA: "48 hours", Description: "Emission reduction strategy review"},
		{ID: 2, Company: "EcoEnergy Corp", Category: "Energy", Status: query.StatusInProgress, Priority: query.PriorityMedium, SubmittedDate: "2025-01-14", SLA: "72 hours", Description: "Carbon footprint assessment"},
		{ID: 3, Company: "SustainableLogistics", Category: "Transportation", Status: query.StatusResolved, Priority: query.PriorityLow, SubmittedDate: "2025-01-10", SLA: "Completed", Description: "Fleet emission optimization"},
		{ID: 4, Company: "CleanManufacturing Ltd", Category: "Manufacturing", Status: query.StatusOpen, Priority: query.PriorityHigh, SubmittedDate: "2025-01-16", SLA: "24 hours", Description: "Waste management compliance"},
		{ID: 5, Company: "RenewableEnergy Plus", Category: "Energy", Status: query.StatusInProgress, Priority: query.PriorityMedium, SubmittedDate: "2025-01-13", SLA: "48 hours", Description: "Solar panel efficiency audit"},
	}
}

func ids(qs []query.Query) []int64 {
	out := make([]int64, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func newService(repo *mocks.QueryRepository, activities *mocks.ActivityRepository) *query.Service {
	return query.NewService(repo, activity.NewService(activities, nil), 0, nil)
}

func TestQueryService_List(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.QueryRepository{}
	repo.On("List", ctx).Return(seedQueries(), nil)
	svc := newService(repo, &mocks.ActivityRepository{})

	energy, err := svc.List(ctx, query.ListOptions{Search: "energy"})
	require.NoError(t, err)
	require.Equal(t, []int64{2, 5}, ids(energy))

	open, err := svc.List(ctx, query.ListOptions{Status: query.StatusOpen})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 4}, ids(open))

	both, err := svc.List(ctx, query.ListOptions{Search: "manufacturing", Status: query.StatusOpen})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 4}, ids(both))

	_, err = svc.List(ctx, query.ListOptions{Status: "Closed"})
	require.ErrorIs(t, err, query.ErrInvalidStatus)
}

func TestParseStatusFilter(t *testing.T) {
	s, err := query.ParseStatusFilter("All")
	require.NoError(t, err)
	require.Empty(t, s)

	s, err = query.ParseStatusFilter("In Progress")
	require.NoError(t, err)
	require.Equal(t, query.StatusInProgress, s)

	_, err = query.ParseStatusFilter("closed")
	require.ErrorIs(t, err, query.ErrInvalidStatus)
}

func TestQueryService_UpdateResolves(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.QueryRepository{}
	activities := &mocks.ActivityRepository{}
	q := seedQueries()[0]
	repo.On("Get", ctx, int64(1)).Return(&q, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(q *query.Query) bool {
		return q.Status == query.StatusResolved && q.SLA == query.SLACompleted && q.Priority == query.PriorityLow
	})).Return(nil)
	activities.On("Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeQueryUpdated && e.Subject == "1"
	})).Return(nil)

	svc := newService(repo, activities)
	status := query.StatusResolved
	priority := query.PriorityLow
	updated, err := svc.Update(ctx, query.UpdateRequest{ID: 1, Status: &status, Priority: &priority})
	require.NoError(t, err)
	require.Equal(t, query.SLACompleted, updated.SLA)
	repo.AssertExpectations(t)
	activities.AssertExpectations(t)
}

func TestQueryService_UpdateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService(&mocks.QueryRepository{}, &mocks.ActivityRepository{})

	bad := query.Status("Closed")
	_, err := svc.Update(ctx, query.UpdateRequest{ID: 1, Status: &bad})
	require.ErrorIs(t, err, query.ErrInvalidStatus)

	badPriority := query.Priority("Urgent")
	_, err = svc.Update(ctx, query.UpdateRequest{ID: 1, Priority: &badPriority})
	require.ErrorIs(t, err, query.ErrInvalidPriority)

	_, err = svc.Update(ctx, query.UpdateRequest{ID: 1})
	require.ErrorIs(t, err, query.ErrInvalidInput)
}

func TestQueryService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.QueryRepository{}
	activities := &mocks.ActivityRepository{}
	q := seedQueries()[2]
	repo.On("Get", ctx, int64(3)).Return(&q, nil)
	repo.On("Delete", ctx, int64(3)).Return(nil)
	repo.On("Get", ctx, int64(42)).Return((*query.Query)(nil), repository.ErrNotFound)
	activities.On("Log", ctx, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeQueryDeleted && e.Subject == "3"
	})).Return(nil)

	svc := newService(repo, activities)
	require.NoError(t, svc.Delete(ctx, 3))
	require.ErrorIs(t, svc.Delete(ctx, 42), query.ErrQueryNotFound)
	activities.AssertExpectations(t)
}

func TestQueryService_StatsAndAlerts(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.QueryRepository{}
	repo.On("List", ctx).Return(seedQueries(), nil)

	svc := newService(repo, &mocks.ActivityRepository{})
	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, query.Stats{Total: 5, Open: 2, InProgress: 2, Resolved: 1}, stats)

	alerts, err := svc.SLAAlerts(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 4, 5}, ids(alerts))

	tight := query.NewService(repo, activity.NewService(&mocks.ActivityRepository{}, nil), 24*time.Hour, nil)
	alerts, err = tight.SLAAlerts(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{4}, ids(alerts))
}

func TestQuery_SLAHours(t *testing.T) {
	hours, ok := query.Query{SLA: "72 hours"}.SLAHours()
	require.True(t, ok)
	require.Equal(t, 72, hours)

	_, ok = query.Query{SLA: "Completed"}.SLAHours()
	require.False(t, ok)

	_, ok = query.Query{}.SLAHours()
	require.False(t, ok)
}

func TestQueryService_SLAAlertsIgnoresHugeSLA(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.QueryRepository{}
	repo.On("List", ctx).Return([]query.Query{
		{ID: 1, Status: query.StatusOpen, SLA: "3000000 hours"},
		{ID: 2, Status: query.StatusOpen, SLA: "9223372036 hours"},
		{ID: 3, Status: query.StatusOpen, SLA: "48 hours"},
	}, nil)

	svc := newService(repo, &mocks.ActivityRepository{})
	alerts, err := svc.SLAAlerts(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{3}, ids(alerts))
}

func TestQueryService_MutationsSurviveAuditFailure(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.QueryRepository{}
	activities := &mocks.ActivityRepository{}
	q := seedQueries()[1]
	repo.On("Get", ctx, int64(2)).Return(&q, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)
	repo.On("Delete", ctx, int64(2)).Return(nil)
	activities.On("Log", ctx, mock.Anything).Return(errors.New("disk full"))

	svc := newService(repo, activities)
	priority := query.PriorityHigh
	updated, err := svc.Update(ctx, query.UpdateRequest{ID: 2, Priority: &priority})
	require.NoError(t, err)
	require.Equal(t, query.PriorityHigh, updated.Priority)

	require.NoError(t, svc.Delete(ctx, 2))
	repo.AssertCalled(t, "Delete", ctx, int64(2))
	activities.AssertNumberOfCalls(t, "Log", 2)
}
