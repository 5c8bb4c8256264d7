package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/repository"
	"github.com/ecotrack/govdash/internal/textmatch"
)

// DefaultAlertWindow is the SLA window used when none is configured.
const DefaultAlertWindow = 48 * time.Hour

// Service handles query tickets.
type Service struct {
	queries     Repository
	activities  activity.Logger
	alertWindow time.Duration
	logger      *slog.Logger
}

// NewService creates a new query service. Unresolved queries whose SLA is
// within alertWindow are reported by SLAAlerts.
func NewService(queries Repository, activities activity.Logger, alertWindow time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if alertWindow <= 0 {
		alertWindow = DefaultAlertWindow
	}
	return &Service{queries: queries, activities: activities, alertWindow: alertWindow, logger: logger}
}

// UpdateRequest describes a query update.
type UpdateRequest struct {
	ID          int64
	Status      *Status
	Priority    *Priority
	SLA         *string
	Description *string
}

// List returns queries whose company or category contains opts.Search,
// restricted to opts.Status when set.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Query, error) {
	if opts.Status != "" && !opts.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	queries, err := s.queries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing queries: %w", err)
	}
	match := textmatch.New(opts.Search)
	out := make([]Query, 0, len(queries))
	for _, q := range queries {
		if opts.Status != "" && q.Status != opts.Status {
			continue
		}
		if !match.Any(q.Company, q.Category) {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

// Get fetches a query by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Query, error) {
	q, err := s.queries.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQueryNotFound
		}
		return nil, fmt.Errorf("getting query: %w", err)
	}
	return q, nil
}

// Update changes the status, priority, SLA or description of a query.
// Resolving a query without an explicit SLA marks its SLA completed.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Query, error) {
	if err := ValidateUpdate(req); err != nil {
		return nil, err
	}
	q, err := s.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		q.Status = *req.Status
		if q.Status == StatusResolved && req.SLA == nil {
			q.SLA = SLACompleted
		}
	}
	if req.Priority != nil {
		q.Priority = *req.Priority
	}
	if req.SLA != nil {
		q.SLA = *req.SLA
	}
	if req.Description != nil {
		q.Description = *req.Description
	}

	if err := s.queries.Update(ctx, q); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQueryNotFound
		}
		return nil, fmt.Errorf("updating query: %w", err)
	}

	activity.Record(ctx, s.activities, s.logger, &activity.ActivityEntry{
		ActivityType: activity.TypeQueryUpdated,
		Subject:      strconv.FormatInt(q.ID, 10),
		Summary:      fmt.Sprintf("Query from %s is %s (%s priority)", q.Company, q.Status, q.Priority),
		Details:      activity.Details(q),
	})
	return q, nil
}

// Delete removes a query.
func (s *Service) Delete(ctx context.Context, id int64) error {
	q, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.queries.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrQueryNotFound
		}
		return fmt.Errorf("deleting query: %w", err)
	}
	activity.Record(ctx, s.activities, s.logger, &activity.ActivityEntry{
		ActivityType: activity.TypeQueryDeleted,
		Subject:      strconv.FormatInt(id, 10),
		Summary:      fmt.Sprintf("Deleted query from %s: %s", q.Company, q.Description),
		Details:      activity.Details(q),
	})
	return nil
}

// Stats counts every query by status.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	queries, err := s.queries.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("listing queries: %w", err)
	}
	var stats Stats
	for _, q := range queries {
		stats.Total++
		switch q.Status {
		case StatusOpen:
			stats.Open++
		case StatusInProgress:
			stats.InProgress++
		case StatusResolved:
			stats.Resolved++
		}
	}
	return stats, nil
}

// SLAAlerts returns unresolved queries whose SLA falls within the alert window.
func (s *Service) SLAAlerts(ctx context.Context) ([]Query, error) {
	queries, err := s.queries.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing queries: %w", err)
	}
	out := []Query{}
	for _, q := range queries {
		if q.Status == StatusResolved {
			continue
		}
		hours, ok := q.SLAHours()
		if !ok {
			continue
		}
		// Compared in hours: a large SLA label would overflow a Duration.
		if hours <= int(s.alertWindow/time.Hour) {
			out = append(out, q)
		}
	}
	return out, nil
}
