package repository

import (
	"context"

	"souqly/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	// ListBySeller returns every review naming the seller as subject; the
	// rating aggregate is recomputed from this set on each read.
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Review, error)
	// FindByBuyerAndListing returns the buyer's existing review for a
	// listing, or (nil, nil) when they have not reviewed it.
	FindByBuyerAndListing(ctx context.Context, buyerID, listingID string) (*entity.Review, error)
	Delete(ctx context.Context, id string) error
}
