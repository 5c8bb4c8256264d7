package sqlite

import (
	"context"
	"testing"

	"github.com/ecotrack/govdash/internal/domain/overview"
	"github.com/stretchr/testify/require"
)

func TestOverviewRepository_Seeded(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewOverviewRepository(db)

	cards, err := repo.Cards(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 4)
	require.Equal(t, overview.StatCard{Title: "Pending Company Reports", Value: 23}, cards[1])

	trend, err := repo.Trend(ctx)
	require.NoError(t, err)
	months := []string{}
	for _, p := range trend {
		months = append(months, p.Month)
	}
	require.Equal(t, []string{"Jan", "Mar", "May", "Jul", "Sep", "Nov"}, months)

	hotspots, err := repo.Hotspots(ctx)
	require.NoError(t, err)
	require.Equal(t, overview.Hotspot{City: "Mumbai", Latitude: 19.076, Longitude: 72.8777}, hotspots[1])

	submissions, err := repo.RecentSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, submissions, 5)
	require.Equal(t, "EcoTech Solutions", submissions[0].Company)
	require.Equal(t, overview.SubmissionPending, submissions[3].Status)
}
