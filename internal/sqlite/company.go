package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecotrack/govdash/internal/domain/emission"
	"github.com/ecotrack/govdash/internal/repository"
)

// CompanyRepository implements emission.Repository for SQLite
type CompanyRepository struct {
	db *DB
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(db *DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// List returns every company in registry order
func (r *CompanyRepository) List(ctx context.Context) ([]emission.Company, error) {
	query := `
		SELECT id, name, sector, current_emissions, emission_limit
		FROM companies
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []emission.Company{}
	for rows.Next() {
		var c emission.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Sector, &c.Current, &c.Limit); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}

	return companies, nil
}

// Get retrieves a company by ID
func (r *CompanyRepository) Get(ctx context.Context, id int64) (*emission.Company, error) {
	query := `
		SELECT id, name, sector, current_emissions, emission_limit
		FROM companies
		WHERE id = ?
	`

	var c emission.Company
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Sector, &c.Current, &c.Limit)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &c, nil
}

// Update stores the name and current emissions of a company. The limit is
// owned by SetSectorLimit and left untouched.
func (r *CompanyRepository) Update(ctx context.Context, c *emission.Company) error {
	query := `
		UPDATE companies
		SET name = ?, current_emissions = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, c.Name, c.Current, c.ID)
	if err != nil {
		if isCheckViolation(err) {
			return repository.ErrInvalidInput
		}
		return fmt.Errorf("failed to update company: %w", err)
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

// SetSectorLimit sets the emission limit of every company in sector and
// returns the number of companies changed
func (r *CompanyRepository) SetSectorLimit(ctx context.Context, sector string, limit float64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE companies SET emission_limit = ? WHERE sector = ?`, limit, sector)
	if err != nil {
		return 0, fmt.Errorf("failed to set sector limit: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read update result: %w", err)
	}

	return rows, nil
}

// ListBudgets returns the sector budgets in display order
func (r *CompanyRepository) ListBudgets(ctx context.Context) ([]emission.SectorBudget, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT sector, used, total FROM sector_budgets ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sector budgets: %w", err)
	}
	defer rows.Close()

	budgets := []emission.SectorBudget{}
	for rows.Next() {
		var b emission.SectorBudget
		if err := rows.Scan(&b.Sector, &b.Used, &b.Total); err != nil {
			return nil, fmt.Errorf("failed to scan sector budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budget rows: %w", err)
	}

	return budgets, nil
}
