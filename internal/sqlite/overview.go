package sqlite

import (
	"context"
	"fmt"

	"github.com/ecotrack/govdash/internal/domain/overview"
)

// OverviewRepository implements overview.Repository for SQLite
type OverviewRepository struct {
	db *DB
}

// NewOverviewRepository creates a new OverviewRepository
func NewOverviewRepository(db *DB) *OverviewRepository {
	return &OverviewRepository{db: db}
}

// Cards returns the dashboard stat cards
func (r *OverviewRepository) Cards(ctx context.Context) ([]overview.StatCard, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT title, value, unit FROM stat_cards ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stat cards: %w", err)
	}
	defer rows.Close()

	cards := []overview.StatCard{}
	for rows.Next() {
		var c overview.StatCard
		if err := rows.Scan(&c.Title, &c.Value, &c.Unit); err != nil {
			return nil, fmt.Errorf("failed to scan stat card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// Trend returns the monthly emission series
func (r *OverviewRepository) Trend(ctx context.Context) ([]overview.TrendPoint, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT month, verified, unverified FROM emission_trend ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list trend: %w", err)
	}
	defer rows.Close()

	points := []overview.TrendPoint{}
	for rows.Next() {
		var p overview.TrendPoint
		if err := rows.Scan(&p.Month, &p.Verified, &p.Unverified); err != nil {
			return nil, fmt.Errorf("failed to scan trend point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// Hotspots returns the emission hotspot locations
func (r *OverviewRepository) Hotspots(ctx context.Context) ([]overview.Hotspot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT city, latitude, longitude FROM hotspots ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list hotspots: %w", err)
	}
	defer rows.Close()

	hotspots := []overview.Hotspot{}
	for rows.Next() {
		var h overview.Hotspot
		if err := rows.Scan(&h.City, &h.Latitude, &h.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan hotspot: %w", err)
		}
		hotspots = append(hotspots, h)
	}
	return hotspots, rows.Err()
}

// RecentSubmissions returns the latest company reports, newest first
func (r *OverviewRepository) RecentSubmissions(ctx context.Context) ([]overview.Submission, error) {
	query := `
		SELECT company, emissions, status, submitted_date
		FROM submissions
		ORDER BY submitted_date DESC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	submissions := []overview.Submission{}
	for rows.Next() {
		var s overview.Submission
		if err := rows.Scan(&s.Company, &s.Emissions, &s.Status, &s.Date); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}
