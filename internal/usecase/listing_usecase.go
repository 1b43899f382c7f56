package usecase

import (
	"context"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
	"souqly/internal/infrastructure/cache"
	"souqly/pkg/errors"
	"souqly/pkg/logger"
)

type ListingUseCase struct {
	listingRepo  repository.ListingRepository
	favoriteRepo repository.FavoriteRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	feedCache    *cache.FeedCache[*entity.Listing]
	pageSize     int
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	favoriteRepo repository.FavoriteRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	feedCache *cache.FeedCache[*entity.Listing],
	pageSize int,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo:  listingRepo,
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		feedCache:    feedCache,
		pageSize:     pageSize,
	}
}

type CreateListingInput struct {
	Name                   string
	Description            string
	Price                  float64
	Quantity               int
	Category               string
	Condition              string
	Images                 []string
	Location               string
	IsAvailableForExchange bool
	ExchangePreferences    string
}

type FeedInput struct {
	Category string
	Keyword  string
	Cursor   string
}

type FeedResult struct {
	Items      []*entity.Listing
	NextCursor string
	HasMore    bool
}

func (uc *ListingUseCase) CreateListing(ctx context.Context, sellerID string, input CreateListingInput) (*entity.Listing, error) {
	if input.Price < 0 {
		return nil, errors.BadRequest("Price cannot be negative", nil)
	}
	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity cannot be negative", nil)
	}

	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}

	listing := &entity.Listing{
		Name:                   input.Name,
		Description:            input.Description,
		Price:                  input.Price,
		Quantity:               input.Quantity,
		Category:               input.Category,
		Condition:              input.Condition,
		Images:                 input.Images,
		SellerID:               sellerID,
		SellerName:             seller.DisplayName(),
		SellerPhoto:            seller.ProfileImageURL,
		Location:               input.Location,
		IsAvailableForExchange: input.IsAvailableForExchange,
		ExchangePreferences:    input.ExchangePreferences,
		Status:                 entity.ListingStatusActive,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// UpdateListing writes the new field values and patches the cached feed
// entry optimistically; a failed write rolls the cached entry back.
func (uc *ListingUseCase) UpdateListing(ctx context.Context, id, sellerID string, input CreateListingInput) (*entity.Listing, error) {
	current, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to update this listing", nil)
	}

	if input.Price < 0 {
		return nil, errors.BadRequest("Price cannot be negative", nil)
	}
	if input.Quantity < 0 {
		return nil, errors.BadRequest("Quantity cannot be negative", nil)
	}

	listing := *current
	listing.Name = input.Name
	listing.Description = input.Description
	listing.Price = input.Price
	listing.Quantity = input.Quantity
	listing.Category = input.Category
	listing.Condition = input.Condition
	listing.Location = input.Location
	listing.IsAvailableForExchange = input.IsAvailableForExchange
	listing.ExchangePreferences = input.ExchangePreferences
	if len(input.Images) > 0 {
		listing.Images = input.Images
	}

	rollback, _ := uc.feedCache.Patch(id, func(*entity.Listing) *entity.Listing {
		patched := listing
		return &patched
	})

	if err := uc.listingRepo.Update(ctx, &listing); err != nil {
		rollback()
		return nil, err
	}

	return &listing, nil
}

// GetListing returns one listing with the viewer's favorite flag attached.
// Cached feed entries are served as copies; viewer state never lands on the
// shared entry. The flag lookup failing never fails the read.
func (uc *ListingUseCase) GetListing(ctx context.Context, id, viewerID string) (*entity.Listing, error) {
	var listing *entity.Listing
	if cached, ok := uc.feedCache.Get(id); ok {
		clone := *cached
		listing = &clone
	} else {
		fetched, err := uc.listingRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		listing = fetched
	}

	if viewerID != "" {
		isFavorite, err := uc.favoriteRepo.IsFavorite(ctx, viewerID, id)
		if err != nil {
			logger.Warn("Failed to resolve favorite flag for listing %s: %v", id, err)
		} else {
			listing.IsFavorite = isFavorite
		}
	}

	return listing, nil
}

// Feed serves one page of the home feed. A fresh load replaces the
// reconciliation cache, a cursor load appends to it, and the response is
// built from the cached entries so optimistic patches show up. The cache
// holds viewer-neutral listings; favorite flags are attached to per-request
// copies only.
func (uc *ListingUseCase) Feed(ctx context.Context, viewerID string, input FeedInput) (*FeedResult, error) {
	page, err := uc.listingRepo.ListPage(ctx, repository.ListingQuery{
		Category: input.Category,
		Keyword:  input.Keyword,
		PageSize: uc.pageSize,
		Cursor:   input.Cursor,
	})
	if err != nil {
		return nil, err
	}

	if input.Cursor == "" {
		uc.feedCache.Replace(page.Items)
	} else {
		uc.feedCache.Append(page.Items)
	}

	served := make([]*entity.Listing, 0, len(page.Items))
	for _, item := range page.Items {
		cached, ok := uc.feedCache.Get(item.ID)
		if !ok {
			cached = item
		}
		clone := *cached
		served = append(served, &clone)
	}

	if viewerID != "" {
		uc.attachFavoriteFlags(ctx, viewerID, served)
	}

	return &FeedResult{
		Items:      served,
		NextCursor: page.NextCursor,
		HasMore:    page.HasMore,
	}, nil
}

func (uc *ListingUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *ListingUseCase) ListMyListings(ctx context.Context, sellerID, status string, limit, offset int) ([]*entity.Listing, int64, error) {
	return uc.listingRepo.ListBySeller(ctx, sellerID, status, limit, offset)
}

// MarkSold and Archive are the only allowed transitions, and only away from
// active: sold and archived are terminal.
func (uc *ListingUseCase) MarkSold(ctx context.Context, id, sellerID string) error {
	return uc.transition(ctx, id, sellerID, entity.ListingStatusSold)
}

func (uc *ListingUseCase) Archive(ctx context.Context, id, sellerID string) error {
	return uc.transition(ctx, id, sellerID, entity.ListingStatusArchived)
}

func (uc *ListingUseCase) transition(ctx context.Context, id, sellerID, target string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if listing.SellerID != sellerID {
		return errors.Forbidden("You don't have permission to update this listing", nil)
	}
	if listing.Status != entity.ListingStatusActive {
		return errors.BadRequest("Only active listings can change status", nil)
	}

	if err := uc.listingRepo.UpdateStatus(ctx, id, target); err != nil {
		return err
	}

	uc.feedCache.Remove(id)
	return nil
}

func (uc *ListingUseCase) DeleteListing(ctx context.Context, id, sellerID string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if listing.SellerID != sellerID {
		return errors.Forbidden("You don't have permission to delete this listing", nil)
	}

	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.feedCache.Remove(id)
	return nil
}

func (uc *ListingUseCase) attachFavoriteFlags(ctx context.Context, viewerID string, listings []*entity.Listing) {
	favoriteIDs, err := uc.favoriteRepo.IDsByUser(ctx, viewerID)
	if err != nil {
		logger.Warn("Failed to load favorites for %s: %v", viewerID, err)
		return
	}

	for _, listing := range listings {
		listing.IsFavorite = favoriteIDs[listing.ID]
	}
}
