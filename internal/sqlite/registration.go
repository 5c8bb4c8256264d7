package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecotrack/govdash/internal/domain/registration"
	"github.com/ecotrack/govdash/internal/repository"
)

// RegistrationRepository implements registration.Repository for SQLite
type RegistrationRepository struct {
	db *DB
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// List returns pending requests in arrival order
func (r *RegistrationRepository) List(ctx context.Context) ([]registration.Request, error) {
	query := `
		SELECT name, email, organization, role, days_pending
		FROM registrations
		ORDER BY rowid ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	requests := []registration.Request{}
	for rows.Next() {
		var req registration.Request
		if err := rows.Scan(&req.Name, &req.Email, &req.Organization, &req.Role, &req.DaysPending); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registration rows: %w", err)
	}

	return requests, nil
}

// Get retrieves a pending request by email
func (r *RegistrationRepository) Get(ctx context.Context, email string) (*registration.Request, error) {
	query := `
		SELECT name, email, organization, role, days_pending
		FROM registrations
		WHERE email = ?
	`

	var req registration.Request
	err := r.db.QueryRowContext(ctx, query, email).Scan(&req.Name, &req.Email, &req.Organization, &req.Role, &req.DaysPending)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get registration: %w", err)
	}

	return &req, nil
}

// Delete removes a pending request
func (r *RegistrationRepository) Delete(ctx context.Context, email string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM registrations WHERE email = ?`, email)
	if err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
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
