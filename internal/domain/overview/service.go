package overview

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
)

// Service assembles the dashboard overview.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new overview service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Get returns the dashboard summary.
func (s *Service) Get(ctx context.Context) (*Overview, error) {
	cards, err := s.repo.Cards(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading stat cards: %w", err)
	}
	trend, err := s.repo.Trend(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading trend: %w", err)
	}
	hotspots, err := s.repo.Hotspots(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading hotspots: %w", err)
	}
	submissions, err := s.repo.RecentSubmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading submissions: %w", err)
	}

	views := make([]SubmissionView, 0, len(submissions))
	for _, sub := range submissions {
		views = append(views, SubmissionView{Submission: sub, Action: sub.Action()})
	}

	return &Overview{
		Cards:             cards,
		TrendLabel:        TrendLabel,
		Trend:             trend,
		MapCenter:         MapCenter,
		Hotspots:          hotspots,
		RecentSubmissions: views,
	}, nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
