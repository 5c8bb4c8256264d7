package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/repository"
)

const activityColumns = `id, actor, activity_type, subject, summary, details, created_at`

// ActivityRepository stores the administrative audit log.
type ActivityRepository struct {
	db *DB
}

func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends entry to the audit log. A zero CreatedAt is stamped with the
// current time.
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	var details sql.NullString
	if entry.Details != "" {
		details = sql.NullString{String: entry.Details, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_log (`+activityColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Actor, entry.ActivityType, entry.Subject, entry.Summary, details, entry.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("activity %s: %w", entry.ID, repository.ErrConflict)
		}
		return fmt.Errorf("failed to log activity: %w", err)
	}
	return nil
}

// List returns entries matching opts, newest first. Entries logged within the
// same timestamp keep insertion order reversed.
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	where, args := activityFilter(opts)
	query := `SELECT ` + activityColumns + ` FROM activity_log` + where +
		` ORDER BY created_at DESC, rowid DESC` + pageClause(opts.Limit, opts.Offset, &args)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	entries := []activity.ActivityEntry{}
	for rows.Next() {
		var (
			entry   activity.ActivityEntry
			details sql.NullString
		)
		if err := rows.Scan(&entry.ID, &entry.Actor, &entry.ActivityType, &entry.Subject,
			&entry.Summary, &details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entry.Details = details.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity: %w", err)
	}
	return entries, nil
}

func activityFilter(opts activity.ListActivityOptions) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	add := func(clause string, arg any) {
		clauses = append(clauses, clause)
		args = append(args, arg)
	}
	if opts.Subject != nil {
		add("subject = ?", *opts.Subject)
	}
	if opts.ActivityType != nil {
		add("activity_type = ?", string(*opts.ActivityType))
	}
	if opts.Actor != nil {
		add("actor = ?", *opts.Actor)
	}
	if opts.Since != nil {
		add("created_at >= ?", opts.Since.UTC())
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// pageClause renders LIMIT/OFFSET. SQLite needs a LIMIT before OFFSET, so an
// offset alone uses LIMIT -1.
func pageClause(limit, offset int, args *[]any) string {
	var clause string
	switch {
	case limit > 0:
		clause = " LIMIT ?"
		*args = append(*args, limit)
	case offset > 0:
		clause = " LIMIT -1"
	}
	if offset > 0 {
		clause += " OFFSET ?"
		*args = append(*args, offset)
	}
	return clause
}
