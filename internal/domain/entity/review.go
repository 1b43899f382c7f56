package entity

import "time"

// Review is left by a buyer about a seller, tied to the listing that
// prompted it.
type Review struct {
	ID        string    `json:"id" firestore:"id"`
	SellerID  string    `json:"seller_id" firestore:"sellerId"`
	BuyerID   string    `json:"buyer_id" firestore:"buyerId"`
	BuyerName string    `json:"buyer_name" firestore:"buyerName"`
	ListingID string    `json:"listing_id" firestore:"productId"`
	Rating    float64   `json:"rating" firestore:"rating"`
	Comment   string    `json:"comment" firestore:"comment"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// RatingSummary is the seller aggregate, recomputed from the full review set
// on every read.
type RatingSummary struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}
