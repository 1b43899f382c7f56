package usecase

import (
	"context"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
)

// FavoriteUseCase never touches the shared feed cache: the favorite flag is
// viewer state, attached to per-request copies at read time.
type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	listingRepo  repository.ListingRepository
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	listingRepo repository.ListingRepository,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
	}
}

// AddFavorite marks a listing as a favorite. Adding twice is a no-op.
func (uc *FavoriteUseCase) AddFavorite(ctx context.Context, userID, listingID string) error {
	if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
		return err
	}

	return uc.favoriteRepo.Add(ctx, userID, listingID)
}

func (uc *FavoriteUseCase) RemoveFavorite(ctx context.Context, userID, listingID string) error {
	return uc.favoriteRepo.Remove(ctx, userID, listingID)
}

// ToggleFavorite flips the favorite state and reports the new value.
func (uc *FavoriteUseCase) ToggleFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	isFavorite, err := uc.favoriteRepo.IsFavorite(ctx, userID, listingID)
	if err != nil {
		return false, err
	}

	if isFavorite {
		if err := uc.RemoveFavorite(ctx, userID, listingID); err != nil {
			return isFavorite, err
		}
		return false, nil
	}

	if err := uc.AddFavorite(ctx, userID, listingID); err != nil {
		return isFavorite, err
	}
	return true, nil
}

func (uc *FavoriteUseCase) ListFavorites(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithListing, int64, error) {
	return uc.favoriteRepo.ListByUser(ctx, userID, limit, offset)
}
