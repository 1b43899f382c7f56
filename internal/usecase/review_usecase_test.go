package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"souqly/internal/domain/entity"
)

func reviewFixtures(t *testing.T) (*ReviewUseCase, *fakeReviewRepo) {
	t.Helper()

	listingRepo := newFakeListingRepo()
	listingRepo.listings["l1"] = &entity.Listing{ID: "l1", SellerID: "seller", Status: entity.ListingStatusSold}

	userRepo := newFakeUserRepo()
	userRepo.users["buyer"] = &entity.User{ID: "buyer", Username: "amine93"}
	userRepo.users["seller"] = &entity.User{ID: "seller"}

	reviewRepo := newFakeReviewRepo()

	return NewReviewUseCase(reviewRepo, listingRepo, userRepo), reviewRepo
}

func TestCreateReview(t *testing.T) {
	uc, _ := reviewFixtures(t)

	review, err := uc.CreateReview(context.Background(), "buyer", CreateReviewInput{
		ListingID: "l1",
		Rating:    4,
		Comment:   "Bon vendeur",
	})
	require.NoError(t, err)

	assert.Equal(t, "seller", review.SellerID)
	assert.Equal(t, "buyer", review.BuyerID)
	assert.Equal(t, "amine93", review.BuyerName)
	assert.Equal(t, 4.0, review.Rating)
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	uc, _ := reviewFixtures(t)

	for _, rating := range []float64{0, 0.5, 5.5, -1} {
		_, err := uc.CreateReview(context.Background(), "buyer", CreateReviewInput{
			ListingID: "l1",
			Rating:    rating,
		})
		assert.Error(t, err, "rating %v must be rejected", rating)
	}
}

func TestCreateReviewNoSelfReview(t *testing.T) {
	uc, _ := reviewFixtures(t)

	_, err := uc.CreateReview(context.Background(), "seller", CreateReviewInput{
		ListingID: "l1",
		Rating:    5,
	})
	assert.Error(t, err)
}

func TestCreateReviewOncePerListing(t *testing.T) {
	uc, _ := reviewFixtures(t)

	_, err := uc.CreateReview(context.Background(), "buyer", CreateReviewInput{ListingID: "l1", Rating: 4})
	require.NoError(t, err)

	_, err = uc.CreateReview(context.Background(), "buyer", CreateReviewInput{ListingID: "l1", Rating: 5})
	assert.Error(t, err)
}

func TestListSellerReviewsRecomputesAggregate(t *testing.T) {
	uc, reviewRepo := reviewFixtures(t)
	ctx := context.Background()

	reviewRepo.Create(ctx, &entity.Review{SellerID: "seller", BuyerID: "b1", ListingID: "x1", Rating: 5})
	reviewRepo.Create(ctx, &entity.Review{SellerID: "seller", BuyerID: "b2", ListingID: "x2", Rating: 4})
	reviewRepo.Create(ctx, &entity.Review{SellerID: "seller", BuyerID: "b3", ListingID: "x3", Rating: 3})
	reviewRepo.Create(ctx, &entity.Review{SellerID: "other", BuyerID: "b4", ListingID: "x4", Rating: 1})

	result, err := uc.ListSellerReviews(ctx, "seller")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Summary.ReviewCount)
	assert.InDelta(t, 4.0, result.Summary.AverageRating, 0.001)
}

func TestListSellerReviewsEmpty(t *testing.T) {
	uc, _ := reviewFixtures(t)

	result, err := uc.ListSellerReviews(context.Background(), "seller")
	require.NoError(t, err)

	assert.Equal(t, 0, result.Summary.ReviewCount)
	assert.Equal(t, 0.0, result.Summary.AverageRating)
}
