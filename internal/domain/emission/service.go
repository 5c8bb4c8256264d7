package emission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/export"
	"github.com/ecotrack/govdash/internal/repository"
	"github.com/ecotrack/govdash/internal/textmatch"
)

// ExportHeader is the header row of the emission CSV export.
var ExportHeader = []string{"Company", "Sector", "Current Emissions", "Emission Limit", "Status"}

// ExportFilename is the suggested name of the CSV export.
const ExportFilename = "companies_emissions.csv"

// Service handles the company emission registry.
type Service struct {
	companies  Repository
	activities activity.Logger
	logger     *slog.Logger
}

// NewService creates a new emission service.
func NewService(companies Repository, activities activity.Logger, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{companies: companies, activities: activities, logger: logger}
}

// UpdateRequest describes an inline edit of a company row.
type UpdateRequest struct {
	ID      int64
	Name    *string
	Current *float64
}

// List returns companies matching opts in registry order.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]CompanyView, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}

	match := textmatch.New(opts.Search)
	views := make([]CompanyView, 0, len(companies))
	for _, c := range companies {
		view := NewView(c)
		if !opts.Status.Matches(view.Status) {
			continue
		}
		if !sectorMatches(opts.Sector, c.Sector) {
			continue
		}
		if !match.Any(c.Name) {
			continue
		}
		views = append(views, view)
	}
	return views, nil
}

// Get fetches a company by ID.
func (s *Service) Get(ctx context.Context, id int64) (*CompanyView, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	view := NewView(*c)
	return &view, nil
}

// Update applies an inline edit of a company's name and current emissions.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*CompanyView, error) {
	if err := ValidateUpdate(req); err != nil {
		return nil, err
	}

	c, err := s.get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	before := *c
	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Current != nil {
		c.Current = *req.Current
	}

	if err := s.companies.Update(ctx, c); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("updating company: %w", err)
	}

	// The limit may have changed since the read; report the stored row.
	after, err := s.get(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	view := NewView(*after)
	activity.Record(ctx, s.activities, s.logger, &activity.ActivityEntry{
		ActivityType: activity.TypeCompanyUpdated,
		Subject:      strconv.FormatInt(after.ID, 10),
		Summary:      fmt.Sprintf("Updated %s (%s)", after.Name, view.Status),
		Details: activity.Details(map[string]any{
			"before": before,
			"after":  after,
		}),
	})
	return &view, nil
}

// ApplySectorLimit sets the emission limit of every company in sector and
// returns how many companies were changed.
func (s *Service) ApplySectorLimit(ctx context.Context, sector string, limit float64) (int64, error) {
	if err := ValidateSectorLimit(sector, limit); err != nil {
		return 0, err
	}

	changed, err := s.companies.SetSectorLimit(ctx, sector, limit)
	if err != nil {
		return 0, fmt.Errorf("setting sector limit: %w", err)
	}
	if changed == 0 {
		return 0, ErrSectorNotFound
	}

	activity.Record(ctx, s.activities, s.logger, &activity.ActivityEntry{
		ActivityType: activity.TypeSectorLimitSet,
		Subject:      sector,
		Summary:      fmt.Sprintf("Set %s limit to %s tons for %d companies", sector, formatAmount(limit), changed),
		Details:      activity.Details(map[string]any{"limit": limit, "companies": changed}),
	})
	s.logger.Info("sector limit applied", "sector", sector, "limit", limit, "companies", changed)
	return changed, nil
}

// Sectors returns the distinct sectors in the order they first appear.
func (s *Service) Sectors(ctx context.Context) ([]string, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	seen := make(map[string]bool)
	sectors := []string{}
	for _, c := range companies {
		if seen[c.Sector] {
			continue
		}
		seen[c.Sector] = true
		sectors = append(sectors, c.Sector)
	}
	return sectors, nil
}

// Budgets returns the emission budget of each sector.
func (s *Service) Budgets(ctx context.Context) ([]SectorBudgetView, error) {
	budgets, err := s.companies.ListBudgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sector budgets: %w", err)
	}
	views := make([]SectorBudgetView, 0, len(budgets))
	for _, b := range budgets {
		views = append(views, SectorBudgetView{SectorBudget: b, Percent: b.Percent()})
	}
	return views, nil
}

// Export writes every company, unfiltered, as the emission CSV report.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return fmt.Errorf("listing companies: %w", err)
	}
	rows := make([][]string, 0, len(companies))
	for _, c := range companies {
		rows = append(rows, []string{
			c.Name,
			c.Sector,
			formatAmount(c.Current),
			formatAmount(c.Limit),
			string(c.Status()),
		})
	}
	if err := export.WriteQuotedCSV(w, ExportHeader, rows); err != nil {
		return fmt.Errorf("exporting companies: %w", err)
	}
	return nil
}

func (s *Service) get(ctx context.Context, id int64) (*Company, error) {
	c, err := s.companies.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, fmt.Errorf("getting company: %w", err)
	}
	return c, nil
}

func sectorMatches(filter, sector string) bool {
	return filter == "" || strings.EqualFold(filter, "all") || filter == sector
}

// formatAmount renders tons without trailing zeros: 480, 480.5.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
