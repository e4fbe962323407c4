package memory

import (
	"context"
	"testing"
	"time"

	"lunchradar/internal/domain/entity"
	"lunchradar/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Likes(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	first := time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC)

	liked, err := store.ExistsLike(ctx, "u1", "1")
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, store.SaveLike(ctx, &entity.Like{UserID: "u1", RestaurantID: "1", CreatedAt: first}))
	require.NoError(t, store.SaveLike(ctx, &entity.Like{UserID: "u1", RestaurantID: "1", CreatedAt: first.Add(time.Hour)}))

	liked, err = store.ExistsLike(ctx, "u1", "1")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, first, store.likes["u1_1"].CreatedAt)

	liked, err = store.ExistsLike(ctx, "u2", "1")
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, store.DeleteLike(ctx, "u1", "1"))
	require.NoError(t, store.DeleteLike(ctx, "u1", "1"))

	liked, err = store.ExistsLike(ctx, "u1", "1")
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestStore_Selections(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.FindSelection(ctx, "u1", "2026-03-09")
	assert.ErrorIs(t, err, repository.ErrSelectionNotFound)

	require.NoError(t, store.SaveSelection(ctx, &entity.Selection{UserID: "u1", Day: "2026-03-09", RestaurantID: "1"}))
	require.NoError(t, store.SaveSelection(ctx, &entity.Selection{UserID: "u1", Day: "2026-03-09", RestaurantID: "2"}))
	require.NoError(t, store.SaveSelection(ctx, &entity.Selection{UserID: "u1", Day: "2026-03-10", RestaurantID: "3"}))

	got, err := store.FindSelection(ctx, "u1", "2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2", got.RestaurantID)

	got.RestaurantID = "mutated"
	again, err := store.FindSelection(ctx, "u1", "2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2", again.RestaurantID)
}
