package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/ecotrack/govdash/internal/repository"
)

// OperatorRepository stores hashed API keys and the operator each one
// authenticates.
type OperatorRepository struct {
	db *DB
}

// NewOperatorRepository creates a new OperatorRepository
func NewOperatorRepository(db *DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// AddAPIKey registers token for operator. Only the token hash is stored.
func (r *OperatorRepository) AddAPIKey(ctx context.Context, token, operator, description string) error {
	if strings.TrimSpace(token) == "" || strings.TrimSpace(operator) == "" {
		return repository.ErrInvalidInput
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO api_keys (key_hash, operator, created_at, description) VALUES (?, ?, ?, ?)`,
		hashToken(token), operator, time.Now().UTC(), description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to add api key: %w", err)
	}
	return nil
}

// ResolveOperator returns the operator owning token and records its use.
func (r *OperatorRepository) ResolveOperator(ctx context.Context, token string) (string, error) {
	hash := hashToken(token)

	var operator string
	err := r.db.QueryRowContext(ctx, `SELECT operator FROM api_keys WHERE key_hash = ?`, hash).Scan(&operator)
	if err == sql.ErrNoRows || (err == nil && operator == "") {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve api key: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `UPDATE api_keys SET last_used = ? WHERE key_hash = ?`, time.Now().UTC(), hash); err != nil {
		return "", fmt.Errorf("failed to touch api key: %w", err)
	}

	return operator, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
