package entity

import "time"

// Favorite lives in the owning user's favorites subcollection, keyed by the
// listing ID so toggling is naturally idempotent.
type Favorite struct {
	ListingID string    `json:"listing_id" firestore:"productId"`
	UserID    string    `json:"user_id" firestore:"userId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// FavoriteWithListing joins a favorite with the current state of its listing.
type FavoriteWithListing struct {
	ListingID string    `json:"listing_id"`
	UserID    string    `json:"user_id"`
	Listing   *Listing  `json:"listing"`
	CreatedAt time.Time `json:"created_at"`
}
