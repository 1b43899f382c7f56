package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"souqly/internal/domain/entity"
)

func cartFixtures(t *testing.T) (*CartUseCase, *fakeCartRepo) {
	t.Helper()

	listingRepo := newFakeListingRepo()
	listingRepo.listings["l1"] = &entity.Listing{
		ID:       "l1",
		Name:     "Calculatrice TI-82",
		Price:    79.99,
		SellerID: "seller",
		Status:   entity.ListingStatusActive,
		Images:   []string{"a.jpg", "b.jpg"},
	}
	listingRepo.listings["sold"] = &entity.Listing{
		ID:       "sold",
		SellerID: "seller",
		Status:   entity.ListingStatusSold,
	}

	cartRepo := newFakeCartRepo()

	return NewCartUseCase(cartRepo, listingRepo, testShippingFee), cartRepo
}

func TestAddToCartSnapshotsListing(t *testing.T) {
	uc, _ := cartFixtures(t)

	line, err := uc.AddToCart(context.Background(), "buyer", "l1", 1)
	require.NoError(t, err)

	assert.Equal(t, "Calculatrice TI-82", line.ListingName)
	assert.Equal(t, 79.99, line.ListingPrice)
	assert.Equal(t, "a.jpg", line.ListingImage)
	assert.Equal(t, 1, line.Quantity)
}

func TestAddToCartTwiceIncrementsQuantity(t *testing.T) {
	uc, cartRepo := cartFixtures(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "buyer", "l1", 1)
	require.NoError(t, err)

	line, err := uc.AddToCart(ctx, "buyer", "l1", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)

	lines, err := cartRepo.ListByUser(ctx, "buyer")
	require.NoError(t, err)
	assert.Len(t, lines, 1, "same listing must not create a second line")
}

func TestAddToCartRejectsInactiveAndOwnListing(t *testing.T) {
	uc, _ := cartFixtures(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "buyer", "sold", 1)
	assert.Error(t, err)

	_, err = uc.AddToCart(ctx, "seller", "l1", 1)
	assert.Error(t, err)
}

func TestUpdateQuantityFloor(t *testing.T) {
	uc, _ := cartFixtures(t)
	ctx := context.Background()

	line, err := uc.AddToCart(ctx, "buyer", "l1", 1)
	require.NoError(t, err)

	assert.Error(t, uc.UpdateQuantity(ctx, "buyer", line.ID, 0))
	assert.Error(t, uc.UpdateQuantity(ctx, "buyer", line.ID, -3))
	assert.NoError(t, uc.UpdateQuantity(ctx, "buyer", line.ID, 2))
}

func TestGetCartSummary(t *testing.T) {
	uc, _ := cartFixtures(t)
	ctx := context.Background()

	_, err := uc.AddToCart(ctx, "buyer", "l1", 2)
	require.NoError(t, err)

	summary, err := uc.GetCart(ctx, "buyer")
	require.NoError(t, err)

	assert.InDelta(t, 159.98, summary.Subtotal, 0.001)
	assert.Equal(t, testShippingFee, summary.ShippingFee)
	assert.InDelta(t, 166.98, summary.Total, 0.001)
}

func TestGetCartEmptyHasNoShippingFee(t *testing.T) {
	uc, _ := cartFixtures(t)

	summary, err := uc.GetCart(context.Background(), "buyer")
	require.NoError(t, err)

	assert.Empty(t, summary.Lines)
	assert.Equal(t, 0.0, summary.ShippingFee)
	assert.Equal(t, 0.0, summary.Total)
}
