package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecotrack/govdash/internal/domain/query"
	"github.com/ecotrack/govdash/internal/repository"
)

// QueryRepository implements query.Repository for SQLite
type QueryRepository struct {
	db *DB
}

// NewQueryRepository creates a new QueryRepository
func NewQueryRepository(db *DB) *QueryRepository {
	return &QueryRepository{db: db}
}

const queryColumns = `id, company, category, status, priority, submitted_date, sla, description`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuery(row rowScanner) (*query.Query, error) {
	var q query.Query
	if err := row.Scan(
		&q.ID,
		&q.Company,
		&q.Category,
		&q.Status,
		&q.Priority,
		&q.SubmittedDate,
		&q.SLA,
		&q.Description,
	); err != nil {
		return nil, err
	}
	return &q, nil
}

// List returns every query in submission order
func (r *QueryRepository) List(ctx context.Context) ([]query.Query, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+queryColumns+` FROM queries ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list queries: %w", err)
	}
	defer rows.Close()

	queries := []query.Query{}
	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan query: %w", err)
		}
		queries = append(queries, *q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating query rows: %w", err)
	}

	return queries, nil
}

// Get retrieves a query by ID
func (r *QueryRepository) Get(ctx context.Context, id int64) (*query.Query, error) {
	q, err := scanQuery(r.db.QueryRowContext(ctx, `SELECT `+queryColumns+` FROM queries WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get query: %w", err)
	}
	return q, nil
}

// Update stores the mutable fields of a query
func (r *QueryRepository) Update(ctx context.Context, q *query.Query) error {
	stmt := `
		UPDATE queries
		SET status = ?, priority = ?, sla = ?, description = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, stmt, q.Status, q.Priority, q.SLA, q.Description, q.ID)
	if err != nil {
		if isCheckViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to update query: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// Delete removes a query
func (r *QueryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM queries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete query: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
