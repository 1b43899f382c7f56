package entity

import (
	"strings"
	"time"
)

const (
	ListingStatusActive   = "active"
	ListingStatusSold     = "sold"
	ListingStatusArchived = "archived"

	ConditionNew     = "new"
	ConditionLikeNew = "likeNew"
	ConditionGood    = "good"
	ConditionFair    = "fair"
	ConditionPoor    = "poor"
)

// newListingThresholdDays is the age under which a listing is badged "new".
const newListingThresholdDays = 7

// commonWords are excluded from generated search keywords. The stored data
// predates the English schema, so French stop words are kept alongside.
var commonWords = map[string]struct{}{
	"le": {}, "la": {}, "les": {}, "un": {}, "une": {}, "des": {},
	"de": {}, "du": {}, "et": {}, "ou": {}, "pour": {}, "par": {},
	"sur": {}, "dans": {}, "avec": {}, "sans": {}, "the": {}, "and": {}, "or": {},
}

// Listing is a sellable item. Timestamps are epoch milliseconds: the stored
// documents carry three physical representations and the ingestion mapper
// normalizes all of them to this form.
type Listing struct {
	ID                     string   `json:"id" firestore:"id"`
	Name                   string   `json:"name" firestore:"name"`
	Description            string   `json:"description" firestore:"description"`
	Price                  float64  `json:"price" firestore:"price"`
	Quantity               int      `json:"quantity" firestore:"quantity"`
	Category               string   `json:"category" firestore:"category"`
	Condition              string   `json:"condition" firestore:"condition"`
	Images                 []string `json:"images" firestore:"images"`
	SellerID               string   `json:"seller_id" firestore:"sellerId"`
	SellerName             string   `json:"seller_name" firestore:"sellerName"`
	SellerPhoto            string   `json:"seller_photo,omitempty" firestore:"sellerPhoto,omitempty"`
	Location               string   `json:"location" firestore:"location"`
	IsAvailableForExchange bool     `json:"is_available_for_exchange" firestore:"isAvailableForExchange"`
	ExchangePreferences    string   `json:"exchange_preferences,omitempty" firestore:"exchangePreferences,omitempty"`
	SearchKeywords         []string `json:"-" firestore:"searchKeywords"`
	Status                 string   `json:"status" firestore:"status"`
	CreatedAt              int64    `json:"created_at" firestore:"createdAt"`
	UpdatedAt              int64    `json:"updated_at" firestore:"updatedAt"`

	// Viewer-scoped, looked up against the viewer's favorites. Never persisted
	// with the listing document.
	IsFavorite bool `json:"is_favorite" firestore:"-"`
}

// IsNew reports whether the listing was created within the last 7 days.
func (l *Listing) IsNew() bool {
	ageMillis := time.Now().UnixMilli() - l.CreatedAt
	return ageMillis <= newListingThresholdDays*24*time.Hour.Milliseconds()
}

// GenerateSearchKeywords derives the array-contains search terms from the
// listing's name, description, category and condition.
func (l *Listing) GenerateSearchKeywords() []string {
	seen := make(map[string]struct{})
	var keywords []string

	add := func(word string) {
		word = strings.ToLower(strings.TrimSpace(word))
		if len(word) <= 2 {
			return
		}
		if _, common := commonWords[word]; common {
			return
		}
		if _, dup := seen[word]; dup {
			return
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}

	for _, word := range strings.Fields(l.Name) {
		add(word)
	}
	for _, word := range strings.Fields(l.Description) {
		add(word)
	}
	add(l.Category)
	add(l.Condition)

	return keywords
}
