package repository

import (
	"context"

	"souqly/internal/domain/entity"
)

type CartRepository interface {
	Upsert(ctx context.Context, line *entity.CartLine) error
	GetLine(ctx context.Context, userID, lineID string) (*entity.CartLine, error)
	// FindByListing returns the user's cart line for a listing, or
	// (nil, nil) when the listing is not in the cart.
	FindByListing(ctx context.Context, userID, listingID string) (*entity.CartLine, error)
	ListByUser(ctx context.Context, userID string) ([]*entity.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, lineID string, quantity int) error
	Remove(ctx context.Context, userID, lineID string) error
}
