package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"souqly/internal/domain/entity"
)

func favoriteFixtures(t *testing.T) (*FavoriteUseCase, *fakeFavoriteRepo) {
	t.Helper()

	listingRepo := newFakeListingRepo()
	listingRepo.listings["l1"] = &entity.Listing{ID: "l1", Name: "Calculatrice", Status: entity.ListingStatusActive}

	favoriteRepo := newFakeFavoriteRepo()

	return NewFavoriteUseCase(favoriteRepo, listingRepo), favoriteRepo
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	uc, favoriteRepo := favoriteFixtures(t)
	ctx := context.Background()

	require.NoError(t, uc.AddFavorite(ctx, "u1", "l1"))
	require.NoError(t, uc.AddFavorite(ctx, "u1", "l1"))

	ids, err := favoriteRepo.IDsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	require.NoError(t, uc.RemoveFavorite(ctx, "u1", "l1"))
	require.NoError(t, uc.RemoveFavorite(ctx, "u1", "l1"))

	ids, err = favoriteRepo.IDsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleFavorite(t *testing.T) {
	uc, _ := favoriteFixtures(t)
	ctx := context.Background()

	on, err := uc.ToggleFavorite(ctx, "u1", "l1")
	require.NoError(t, err)
	assert.True(t, on)

	off, err := uc.ToggleFavorite(ctx, "u1", "l1")
	require.NoError(t, err)
	assert.False(t, off)
}

func TestAddFavoriteUnknownListing(t *testing.T) {
	uc, _ := favoriteFixtures(t)

	err := uc.AddFavorite(context.Background(), "u1", "ghost")
	assert.Error(t, err)
}
