package usecase

import (
	"context"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
	"souqly/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type CreateReviewInput struct {
	ListingID string
	Rating    float64
	Comment   string
}

type SellerReviews struct {
	Reviews []*entity.Review     `json:"reviews"`
	Summary entity.RatingSummary `json:"summary"`
}

// CreateReview records a buyer's review of a seller. One review per buyer
// and listing; sellers cannot review themselves.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, buyerID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.SellerID == buyerID {
		return nil, errors.BadRequest("You cannot review your own listing", nil)
	}

	existing, err := uc.reviewRepo.FindByBuyerAndListing(ctx, buyerID, input.ListingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("You have already reviewed this listing")
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	review := &entity.Review{
		SellerID:  listing.SellerID,
		BuyerID:   buyerID,
		BuyerName: buyer.DisplayName(),
		ListingID: input.ListingID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// ListSellerReviews returns a seller's reviews with the aggregate recomputed
// from the full set, never read from a stored counter.
func (uc *ReviewUseCase) ListSellerReviews(ctx context.Context, sellerID string) (*SellerReviews, error) {
	reviews, err := uc.reviewRepo.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	result := &SellerReviews{Reviews: reviews}
	result.Summary.ReviewCount = len(reviews)
	if len(reviews) > 0 {
		var sum float64
		for _, review := range reviews {
			sum += review.Rating
		}
		result.Summary.AverageRating = sum / float64(len(reviews))
	}

	return result, nil
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, id, buyerID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if review.BuyerID != buyerID {
		return errors.Forbidden("You don't have permission to delete this review", nil)
	}

	return uc.reviewRepo.Delete(ctx, id)
}
