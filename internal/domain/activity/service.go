package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles activity log operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// LogActivity stamps the entry with an ID, the acting operator and the
// current time where missing, then persists it.
func (s *Service) LogActivity(ctx context.Context, entry *ActivityEntry) error {
	if entry == nil || entry.ActivityType == "" || strings.TrimSpace(entry.Subject) == "" {
		return ErrInvalidInput
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Actor == "" {
		entry.Actor = ActorFromContext(ctx)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("logging activity: %w", err)
	}
	s.logger.Info("activity recorded",
		"type", entry.ActivityType,
		"subject", entry.Subject,
		"actor", entry.Actor,
	)
	return nil
}

// Record writes entry through activities. The action it describes has already
// been committed, so a failure is reported to logger and not returned.
func Record(ctx context.Context, activities Logger, logger *slog.Logger, entry *ActivityEntry) {
	if err := activities.LogActivity(ctx, entry); err != nil {
		logger.Error("failed to record activity",
			"type", entry.ActivityType,
			"subject", entry.Subject,
			"error", err,
		)
	}
}

// GetRecentActivity lists activity entries newest first.
func (s *Service) GetRecentActivity(ctx context.Context, opts ListActivityOptions) ([]ActivityEntry, error) {
	entries, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("listing activity: %w", err)
	}
	return entries, nil
}

// Details encodes v as the JSON details payload of an entry. Values that
// cannot be encoded produce an empty payload.
func Details(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
