package usecase

import (
	"context"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
	"souqly/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	listingRepo repository.ListingRepository
	shippingFee float64
}

func NewCartUseCase(
	cartRepo repository.CartRepository,
	listingRepo repository.ListingRepository,
	shippingFee float64,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		listingRepo: listingRepo,
		shippingFee: shippingFee,
	}
}

// CartSummary is what the cart screen renders: every line plus the
// totals with the flat shipping fee applied.
type CartSummary struct {
	Lines       []*entity.CartLine `json:"items"`
	Subtotal    float64            `json:"subtotal"`
	ShippingFee float64            `json:"shipping_fee"`
	Total       float64            `json:"total"`
}

// AddToCart adds a listing with a denormalized snapshot of its name, price
// and first image. Adding the same listing again increments the existing
// line instead of creating a second one.
func (uc *CartUseCase) AddToCart(ctx context.Context, userID, listingID string, quantity int) (*entity.CartLine, error) {
	if quantity < 1 {
		quantity = 1
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != entity.ListingStatusActive {
		return nil, errors.BadRequest("This listing is no longer available", nil)
	}
	if listing.SellerID == userID {
		return nil, errors.BadRequest("You cannot add your own listing to the cart", nil)
	}

	existing, err := uc.cartRepo.FindByListing(ctx, userID, listingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Quantity += quantity
		if err := uc.cartRepo.UpdateQuantity(ctx, userID, existing.ID, existing.Quantity); err != nil {
			return nil, err
		}
		return existing, nil
	}

	line := &entity.CartLine{
		UserID:       userID,
		ListingID:    listingID,
		ListingName:  listing.Name,
		ListingPrice: listing.Price,
		Quantity:     quantity,
	}
	if len(listing.Images) > 0 {
		line.ListingImage = listing.Images[0]
	}

	if err := uc.cartRepo.Upsert(ctx, line); err != nil {
		return nil, err
	}

	return line, nil
}

func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	if quantity < 1 {
		return errors.BadRequest("Quantity must be at least 1", nil)
	}
	return uc.cartRepo.UpdateQuantity(ctx, userID, lineID, quantity)
}

func (uc *CartUseCase) RemoveFromCart(ctx context.Context, userID, lineID string) error {
	return uc.cartRepo.Remove(ctx, userID, lineID)
}

func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*CartSummary, error) {
	lines, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &CartSummary{Lines: lines}
	for _, line := range lines {
		summary.Subtotal += line.Subtotal()
	}
	if len(lines) > 0 {
		summary.ShippingFee = uc.shippingFee
	}
	summary.Total = summary.Subtotal + summary.ShippingFee

	return summary, nil
}
