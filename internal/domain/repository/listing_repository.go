package repository

import (
	"context"

	"souqly/internal/domain/entity"
)

// ListingQuery describes one page of the listing feed. Category and Keyword
// are optional and compose with the always-applied active-status filter;
// Cursor is the opaque marker returned by the previous page, empty for the
// first page.
type ListingQuery struct {
	Category string
	Keyword  string
	PageSize int
	Cursor   string
}

// ListingPage is one page of feed results. HasMore is false exactly when the
// underlying query returned fewer documents than the page size.
type ListingPage struct {
	Items      []*entity.Listing
	NextCursor string
	HasMore    bool
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	ListPage(ctx context.Context, query ListingQuery) (*ListingPage, error)
	ListBySeller(ctx context.Context, sellerID, status string, limit, offset int) ([]*entity.Listing, int64, error)
	GetMany(ctx context.Context, ids []string) (map[string]*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}
