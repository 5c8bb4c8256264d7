package sqlite

import (
	"context"
	"testing"

	"github.com/ecotrack/govdash/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestOperatorRepository_AddResolve(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewOperatorRepository(db)

	require.NoError(t, repo.AddAPIKey(ctx, "secret-token", "inspector", "test key"))

	operator, err := repo.ResolveOperator(ctx, "secret-token")
	require.NoError(t, err)
	require.Equal(t, "inspector", operator)

	var stored string
	require.NoError(t, db.QueryRow("SELECT key_hash FROM api_keys").Scan(&stored))
	require.NotEqual(t, "secret-token", stored)
	require.Equal(t, hashToken("secret-token"), stored)

	var touched int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM api_keys WHERE last_used IS NOT NULL").Scan(&touched))
	require.Equal(t, 1, touched)

	_, err = repo.ResolveOperator(ctx, "wrong")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, repo.AddAPIKey(ctx, "secret-token", "other", ""), repository.ErrConflict)
}

func TestOperatorRepository_RejectsBlankOperator(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewOperatorRepository(db)

	require.ErrorIs(t, repo.AddAPIKey(ctx, "token", "  ", ""), repository.ErrInvalidInput)
	require.ErrorIs(t, repo.AddAPIKey(ctx, "", "inspector", ""), repository.ErrInvalidInput)

	_, err := repo.ResolveOperator(ctx, "token")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
