package registration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/export"
	"github.com/ecotrack/govdash/internal/repository"
	"github.com/ecotrack/govdash/internal/textmatch"
)

const (
	// ExportSheet is the name of the single sheet in the XLSX export.
	ExportSheet = "Pending Companies"
	// ExportFilename is the suggested name of the XLSX export.
	ExportFilename = "pending_companies.xlsx"
)

// ExportHeader mirrors the JSON field names of Request.
var ExportHeader = []string{"name", "email", "organization", "role", "daysPending"}

// Service handles the pending registration queue.
type Service struct {
	requests   Repository
	activities activity.Logger
	logger     *slog.Logger
}

// NewService creates a new registration service.
func NewService(requests Repository, activities activity.Logger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{requests: requests, activities: activities, logger: logger}
}

// List returns pending requests whose name, email or organization contains
// search, ignoring case.
func (s *Service) List(ctx context.Context, search string) ([]Request, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing registrations: %w", err)
	}
	match := textmatch.New(search)
	out := make([]Request, 0, len(requests))
	for _, r := range requests {
		if match.Any(r.Name, r.Email, r.Organization) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Decide approves or rejects the request identified by email and removes it
// from the pending queue.
func (s *Service) Decide(ctx context.Context, email string, decision Decision) (*Outcome, error) {
	if _, err := ParseDecision(string(decision)); err != nil {
		return nil, err
	}

	req, err := s.requests.Get(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("getting registration: %w", err)
	}

	if err := s.requests.Delete(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("removing registration: %w", err)
	}

	outcome := &Outcome{
		Request:  *req,
		Decision: decision,
		Message:  fmt.Sprintf("%s from %s has been %s.", req.Name, req.Organization, decision.PastTense()),
	}

	entryType := activity.TypeRegistrationRejected
	if decision == DecisionApprove {
		entryType = activity.TypeRegistrationApproved
	}
	activity.Record(ctx, s.activities, s.logger, &activity.ActivityEntry{
		ActivityType: entryType,
		Subject:      req.Email,
		Summary:      outcome.Message,
		Details:      activity.Details(req),
	})
	return outcome, nil
}

// Export writes every pending request as a single-sheet workbook.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return fmt.Errorf("listing registrations: %w", err)
	}
	rows := make([][]any, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []any{r.Name, r.Email, r.Organization, r.Role, r.DaysPending})
	}
	if err := export.WriteSheet(w, ExportSheet, ExportHeader, rows); err != nil {
		return fmt.Errorf("exporting registrations: %w", err)
	}
	return nil
}
