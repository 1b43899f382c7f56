package repository

import (
	"context"

	"souqly/internal/domain/entity"
)

type FavoriteRepository interface {
	// Add and Remove are idempotent: repeating either is not an error and
	// leaves at most one favorite record per (user, listing) pair.
	Add(ctx context.Context, userID, listingID string) error
	Remove(ctx context.Context, userID, listingID string) error

	IsFavorite(ctx context.Context, userID, listingID string) (bool, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithListing, int64, error)
	IDsByUser(ctx context.Context, userID string) (map[string]bool, error)
}
