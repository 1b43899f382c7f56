package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
	"souqly/pkg/errors"
	"souqly/pkg/logger"
)

type firestoreFavoriteRepository struct {
	client      *firestore.Client
	listingRepo repository.ListingRepository
}

func NewFirestoreFavoriteRepository(client *firestore.Client, listingRepo repository.ListingRepository) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{
		client:      client,
		listingRepo: listingRepo,
	}
}

func (r *firestoreFavoriteRepository) favoritesOf(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("favorites")
}

// Add is keyed by the listing ID, so setting twice leaves one record.
func (r *firestoreFavoriteRepository) Add(ctx context.Context, userID, listingID string) error {
	favorite := entity.Favorite{
		ListingID: listingID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	_, err := r.favoritesOf(userID).Doc(listingID).Set(ctx, favorite)
	if err != nil {
		return errors.Internal("Failed to add favorite", err)
	}

	return nil
}

// Remove of an absent favorite is not an error.
func (r *firestoreFavoriteRepository) Remove(ctx context.Context, userID, listingID string) error {
	_, err := r.favoritesOf(userID).Doc(listingID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	doc, err := r.favoritesOf(userID).Doc(listingID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]entity.FavoriteWithListing, int64, error) {
	query := r.favoritesOf(userID).OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch favorites", err)
	}

	var favorites []entity.Favorite
	listingIDs := make([]string, 0, len(allDocs))
	for _, doc := range allDocs {
		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			logger.Warn("Dropping malformed favorite document %s: %v", doc.Ref.ID, err)
			continue
		}
		if favorite.ListingID == "" {
			favorite.ListingID = doc.Ref.ID
		}
		favorites = append(favorites, favorite)
		listingIDs = append(listingIDs, favorite.ListingID)
	}

	if len(listingIDs) == 0 {
		return []entity.FavoriteWithListing{}, 0, nil
	}

	listings, err := r.listingRepo.GetMany(ctx, listingIDs)
	if err != nil {
		return nil, 0, err
	}

	// Favorites pointing at sold, archived or deleted listings are hidden.
	var joined []entity.FavoriteWithListing
	var activeCount int64
	for _, favorite := range favorites {
		listing, exists := listings[favorite.ListingID]
		if !exists || listing.Status != entity.ListingStatusActive {
			continue
		}
		activeCount++

		if int(activeCount) > offset && (limit <= 0 || len(joined) < limit) {
			listing.IsFavorite = true
			joined = append(joined, entity.FavoriteWithListing{
				ListingID: favorite.ListingID,
				UserID:    favorite.UserID,
				Listing:   listing,
				CreatedAt: favorite.CreatedAt,
			})
		}
	}

	return joined, activeCount, nil
}

func (r *firestoreFavoriteRepository) IDsByUser(ctx context.Context, userID string) (map[string]bool, error) {
	iter := r.favoritesOf(userID).Documents(ctx)
	defer iter.Stop()

	ids := make(map[string]bool)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate favorites", err)
		}
		ids[doc.Ref.ID] = true
	}

	return ids, nil
}
