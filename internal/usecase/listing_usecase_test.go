package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
	"souqly/internal/infrastructure/cache"
	"souqly/pkg/errors"
)

func listingFixtures(t *testing.T) (*ListingUseCase, *fakeListingRepo, *fakeFavoriteRepo, *cache.FeedCache[*entity.Listing]) {
	t.Helper()

	listingRepo := newFakeListingRepo()
	favoriteRepo := newFakeFavoriteRepo()
	userRepo := newFakeUserRepo()
	userRepo.users["seller"] = &entity.User{ID: "seller", FirstName: "Sami", LastName: "Trabelsi"}

	feedCache := cache.NewFeedCache(func(l *entity.Listing) string { return l.ID })

	uc := NewListingUseCase(listingRepo, favoriteRepo, userRepo, fakeCategoryRepo{}, feedCache, 20)
	return uc, listingRepo, favoriteRepo, feedCache
}

func TestCreateListingDenormalizesSeller(t *testing.T) {
	uc, _, _, _ := listingFixtures(t)

	listing, err := uc.CreateListing(context.Background(), "seller", CreateListingInput{
		Name:      "Calculatrice TI-82",
		Price:     79.99,
		Quantity:  1,
		Category:  "Calculatrices",
		Condition: entity.ConditionLikeNew,
	})
	require.NoError(t, err)

	assert.Equal(t, "seller", listing.SellerID)
	assert.Equal(t, "Sami Trabelsi", listing.SellerName)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)
}

func TestCreateListingRejectsNegativeValues(t *testing.T) {
	uc, _, _, _ := listingFixtures(t)

	_, err := uc.CreateListing(context.Background(), "seller", CreateListingInput{Name: "x", Price: -1})
	assert.Error(t, err)

	_, err = uc.CreateListing(context.Background(), "seller", CreateListingInput{Name: "x", Quantity: -1})
	assert.Error(t, err)
}

func TestFeedPassesFiltersThrough(t *testing.T) {
	uc, listingRepo, _, _ := listingFixtures(t)
	listingRepo.pages = []*repository.ListingPage{{}}

	_, err := uc.Feed(context.Background(), "", FeedInput{Category: "Calculatrices", Keyword: "ti-82", Cursor: "tok"})
	require.NoError(t, err)

	assert.Equal(t, "Calculatrices", listingRepo.lastQ.Category)
	assert.Equal(t, "ti-82", listingRepo.lastQ.Keyword)
	assert.Equal(t, "tok", listingRepo.lastQ.Cursor)
	assert.Equal(t, 20, listingRepo.lastQ.PageSize)
}

func TestFeedReplacesCacheOnFreshLoadAppendsOnCursor(t *testing.T) {
	uc, listingRepo, _, feedCache := listingFixtures(t)

	listingRepo.pages = []*repository.ListingPage{
		{Items: []*entity.Listing{{ID: "a"}, {ID: "b"}}, NextCursor: "c1", HasMore: true},
		{Items: []*entity.Listing{{ID: "c"}}, HasMore: false},
		{Items: []*entity.Listing{{ID: "z"}}},
	}

	first, err := uc.Feed(context.Background(), "", FeedInput{})
	require.NoError(t, err)
	assert.True(t, first.HasMore)
	assert.Equal(t, 2, feedCache.Len())

	second, err := uc.Feed(context.Background(), "", FeedInput{Cursor: first.NextCursor})
	require.NoError(t, err)
	assert.False(t, second.HasMore)
	assert.Equal(t, 3, feedCache.Len())

	// Fresh load drops the accumulated pages.
	_, err = uc.Feed(context.Background(), "", FeedInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, feedCache.Len())
}

func TestFeedAttachesViewerFavorites(t *testing.T) {
	uc, listingRepo, favoriteRepo, _ := listingFixtures(t)

	listingRepo.pages = []*repository.ListingPage{
		{Items: []*entity.Listing{{ID: "a"}, {ID: "b"}}},
	}
	favoriteRepo.Add(context.Background(), "viewer", "b")

	result, err := uc.Feed(context.Background(), "viewer", FeedInput{})
	require.NoError(t, err)

	assert.False(t, result.Items[0].IsFavorite)
	assert.True(t, result.Items[1].IsFavorite)
}

func TestFeedViewerFlagsStayOffSharedCache(t *testing.T) {
	uc, listingRepo, favoriteRepo, feedCache := listingFixtures(t)
	ctx := context.Background()

	listingRepo.pages = []*repository.ListingPage{
		{Items: []*entity.Listing{{ID: "a"}, {ID: "b"}}},
		{Items: []*entity.Listing{{ID: "a"}, {ID: "b"}}},
	}
	favoriteRepo.Add(ctx, "alice", "b")

	aliceView, err := uc.Feed(ctx, "alice", FeedInput{})
	require.NoError(t, err)
	assert.True(t, aliceView.Items[1].IsFavorite)

	// The cached entry stays viewer-neutral.
	cached, ok := feedCache.Get("b")
	require.True(t, ok)
	assert.False(t, cached.IsFavorite)

	// Another viewer's feed must not inherit alice's flag.
	bobView, err := uc.Feed(ctx, "bob", FeedInput{})
	require.NoError(t, err)
	assert.False(t, bobView.Items[1].IsFavorite)
}

func TestUpdateListingPatchesCachedFeedEntry(t *testing.T) {
	uc, listingRepo, _, feedCache := listingFixtures(t)
	ctx := context.Background()

	listingRepo.listings["l1"] = &entity.Listing{ID: "l1", Name: "Old name", Price: 10, SellerID: "seller", Status: entity.ListingStatusActive}
	feedCache.Replace([]*entity.Listing{listingRepo.listings["l1"]})

	_, err := uc.UpdateListing(ctx, "l1", "seller", CreateListingInput{Name: "New name", Price: 12, Quantity: 1})
	require.NoError(t, err)

	cached, ok := feedCache.Get("l1")
	require.True(t, ok)
	assert.Equal(t, "New name", cached.Name)

	// Detail reads serve the patched entry.
	listing, err := uc.GetListing(ctx, "l1", "")
	require.NoError(t, err)
	assert.Equal(t, "New name", listing.Name)
	assert.Equal(t, 12.0, listing.Price)
}

func TestUpdateListingRollsBackCacheOnWriteFailure(t *testing.T) {
	uc, listingRepo, _, feedCache := listingFixtures(t)
	ctx := context.Background()

	listingRepo.listings["l1"] = &entity.Listing{ID: "l1", Name: "Old name", Price: 10, SellerID: "seller", Status: entity.ListingStatusActive}
	feedCache.Replace([]*entity.Listing{listingRepo.listings["l1"]})
	listingRepo.updateErr = errors.Internal("write failed", nil)

	_, err := uc.UpdateListing(ctx, "l1", "seller", CreateListingInput{Name: "New name", Price: 12, Quantity: 1})
	require.Error(t, err)

	cached, ok := feedCache.Get("l1")
	require.True(t, ok)
	assert.Equal(t, "Old name", cached.Name, "failed write must not leave the cache patched")
}

func TestStatusTransitionsOnlyFromActive(t *testing.T) {
	uc, listingRepo, _, feedCache := listingFixtures(t)
	ctx := context.Background()

	listingRepo.listings["l1"] = &entity.Listing{ID: "l1", SellerID: "seller", Status: entity.ListingStatusActive}
	feedCache.Replace([]*entity.Listing{listingRepo.listings["l1"]})

	require.NoError(t, uc.MarkSold(ctx, "l1", "seller"))
	assert.Equal(t, entity.ListingStatusSold, listingRepo.listings["l1"].Status)

	// Sold is terminal.
	assert.Error(t, uc.Archive(ctx, "l1", "seller"))

	// The cached feed no longer carries the sold listing.
	_, ok := feedCache.Get("l1")
	assert.False(t, ok)
}

func TestStatusTransitionOwnershipEnforced(t *testing.T) {
	uc, listingRepo, _, _ := listingFixtures(t)

	listingRepo.listings["l1"] = &entity.Listing{ID: "l1", SellerID: "seller", Status: entity.ListingStatusActive}

	assert.Error(t, uc.MarkSold(context.Background(), "l1", "intruder"))
	assert.Error(t, uc.DeleteListing(context.Background(), "l1", "intruder"))
}

func TestGetListingAttachesFavoriteFlag(t *testing.T) {
	uc, listingRepo, favoriteRepo, _ := listingFixtures(t)
	ctx := context.Background()

	listingRepo.listings["l1"] = &entity.Listing{ID: "l1", Status: entity.ListingStatusActive}
	favoriteRepo.Add(ctx, "viewer", "l1")

	listing, err := uc.GetListing(ctx, "l1", "viewer")
	require.NoError(t, err)
	assert.True(t, listing.IsFavorite)
}
