package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ecotrack/govdash/internal/domain/activity"
	"github.com/ecotrack/govdash/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	entry1 := &activity.ActivityEntry{
		ID:           "a1",
		Actor:        "inspector",
		ActivityType: activity.TypeCompanyUpdated,
		Subject:      "1",
		Summary:      "Updated EcoTech Solutions",
		Details:      `{"id":1}`,
	}
	entry2 := &activity.ActivityEntry{
		ID:           "a2",
		Actor:        "inspector",
		ActivityType: activity.TypeSectorLimitSet,
		Subject:      "Energy",
		Summary:      "Set Energy limit",
	}

	require.NoError(t, repo.Log(ctx, entry1))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Log(ctx, entry2))

	entries, err := repo.List(ctx, activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, entry2.ActivityType, entries[0].ActivityType)
	require.Equal(t, entry1.ActivityType, entries[1].ActivityType)
	require.Equal(t, `{"id":1}`, entries[1].Details)
	require.Equal(t, "inspector", entries[1].Actor)
	require.False(t, entries[1].CreatedAt.IsZero())
}

func TestActivityRepository_Filters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewActivityRepository(db)
	for i, subject := range []string{"1", "2", "1"} {
		require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{
			ID:           string(rune('a' + i)),
			Actor:        "system",
			ActivityType: activity.TypeQueryUpdated,
			Subject:      subject,
			Summary:      "updated",
		}))
	}
	require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{
		ID:           "d",
		Actor:        "system",
		ActivityType: activity.TypeQueryDeleted,
		Subject:      "1",
		Summary:      "deleted",
	}))

	subject := "1"
	entries, err := repo.List(ctx, activity.ListActivityOptions{Subject: &subject})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	deleted := activity.TypeQueryDeleted
	entries, err = repo.List(ctx, activity.ListActivityOptions{Subject: &subject, ActivityType: &deleted})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Offset: 3})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestActivityRepository_ActorAndSince(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	base := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	for i, actor := range []string{"inspector", "auditor", "inspector"} {
		require.NoError(t, repo.Log(ctx, &activity.ActivityEntry{
			ID:           string(rune('a' + i)),
			Actor:        actor,
			ActivityType: activity.TypeRegistrationApproved,
			Subject:      "john@company.com",
			Summary:      "approved",
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		}))
	}

	actor := "inspector"
	entries, err := repo.List(ctx, activity.ListActivityOptions{Actor: &actor})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "c", entries[0].ID)

	since := base.Add(time.Hour)
	entries, err = repo.List(ctx, activity.ListActivityOptions{Since: &since})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, []string{"c", "b"}, []string{entries[0].ID, entries[1].ID})

	entries, err = repo.List(ctx, activity.ListActivityOptions{Actor: &actor, Since: &since})
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestActivityRepository_DuplicateID(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	entry := activity.ActivityEntry{ID: "dup", Actor: "system", ActivityType: activity.TypeQueryDeleted, Subject: "3", Summary: "deleted"}
	require.NoError(t, repo.Log(ctx, &entry))
	again := entry
	require.ErrorIs(t, repo.Log(ctx, &again), repository.ErrConflict)
}
