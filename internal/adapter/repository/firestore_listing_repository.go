package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
	"souqly/pkg/errors"
	"souqly/pkg/logger"
	"souqly/pkg/utils"
)

// listingCollection keeps the name the historical dataset was written under.
const listingCollection = "produits"

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		doc := r.client.Collection(listingCollection).NewDoc()
		listing.ID = doc.ID
	}

	now := time.Now().UnixMilli()
	if listing.CreatedAt == 0 {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	if listing.Status == "" {
		listing.Status = entity.ListingStatusActive
	}
	listing.SearchKeywords = listing.GenerateSearchKeywords()

	_, err := r.client.Collection(listingCollection).Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection(listingCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	listing, err := mapListingDoc(doc.Ref.ID, doc.Data())
	if err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}

	return listing, nil
}

// ListPage runs one cursor-based page of the feed. Filters compose with the
// active-status filter server-side; a malformed document is logged and
// dropped without aborting the page.
func (r *firestoreListingRepository) ListPage(ctx context.Context, q repository.ListingQuery) (*repository.ListingPage, error) {
	pageSize := q.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}

	query := r.client.Collection(listingCollection).Query.
		Where("status", "==", entity.ListingStatusActive)

	if q.Category != "" {
		query = query.Where("category", "==", q.Category)
	}
	if q.Keyword != "" {
		query = query.Where("searchKeywords", "array-contains", strings.ToLower(q.Keyword))
	}

	query = query.
		OrderBy("createdAt", firestore.Desc).
		OrderBy(firestore.DocumentID, firestore.Desc)

	cursor, err := utils.DecodeCursor(q.Cursor)
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		query = query.StartAfter(cursor.CreatedAt, cursor.DocID)
	}

	iter := query.Limit(pageSize).Documents(ctx)
	defer iter.Stop()

	var docs []rawListingDoc
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate listings", err)
		}
		docs = append(docs, rawListingDoc{id: doc.Ref.ID, data: doc.Data()})
	}

	return assembleListingPage(docs, pageSize), nil
}

type rawListingDoc struct {
	id   string
	data map[string]interface{}
}

// assembleListingPage maps one fetched page. HasMore and the cursor are
// derived from the raw documents, not the mapped ones: a dropped document
// must neither end the feed early nor desync the cursor's createdAt from
// its doc ID, or StartAfter re-serves rows already sent.
func assembleListingPage(docs []rawListingDoc, pageSize int) *repository.ListingPage {
	var listings []*entity.Listing
	var lastCreatedAt int64
	var lastDocID string

	for _, doc := range docs {
		lastDocID = doc.id
		if millis, err := millisField(doc.data, "createdAt", "dateCreation"); err == nil {
			lastCreatedAt = millis
		}

		listing, err := mapListingDoc(doc.id, doc.data)
		if err != nil {
			logger.Warn("Dropping malformed listing document: %v", err)
			continue
		}
		listings = append(listings, listing)
	}

	page := &repository.ListingPage{
		Items:   listings,
		HasMore: len(docs) == pageSize,
	}
	if len(docs) > 0 {
		page.NextCursor = utils.EncodeCursor(lastCreatedAt, lastDocID)
	}

	return page
}

func (r *firestoreListingRepository) ListBySeller(ctx context.Context, sellerID, statusFilter string, limit, offset int) ([]*entity.Listing, int64, error) {
	query := r.client.Collection(listingCollection).Query.Where("sellerId", "==", sellerID)
	if statusFilter != "" {
		query = query.Where("status", "==", statusFilter)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch seller listings", err)
	}
	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var listings []*entity.Listing
	for _, doc := range allDocs[start:end] {
		listing, err := mapListingDoc(doc.Ref.ID, doc.Data())
		if err != nil {
			logger.Warn("Dropping malformed listing document: %v", err)
			continue
		}
		listings = append(listings, listing)
	}

	return listings, total, nil
}

// GetMany batch-fetches listings by ID. Firestore caps GetAll batches, so
// requests are chunked; missing or malformed documents are skipped.
func (r *firestoreListingRepository) GetMany(ctx context.Context, ids []string) (map[string]*entity.Listing, error) {
	const batchSize = 30

	result := make(map[string]*entity.Listing, len(ids))
	for i := 0; i < len(ids); i += batchSize {
		end := i + batchSize
		if end > len(ids) {
			end = len(ids)
		}

		refs := make([]*firestore.DocumentRef, 0, end-i)
		for _, id := range ids[i:end] {
			refs = append(refs, r.client.Collection(listingCollection).Doc(id))
		}

		docs, err := r.client.GetAll(ctx, refs)
		if err != nil {
			return nil, errors.Internal("Failed to batch fetch listings", err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			listing, err := mapListingDoc(doc.Ref.ID, doc.Data())
			if err != nil {
				logger.Warn("Dropping malformed listing document: %v", err)
				continue
			}
			result[listing.ID] = listing
		}
	}

	return result, nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now().UnixMilli()
	listing.SearchKeywords = listing.GenerateSearchKeywords()

	_, err := r.client.Collection(listingCollection).Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) UpdateStatus(ctx context.Context, id, newStatus string) error {
	_, err := r.client.Collection(listingCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: newStatus},
		{Path: "updatedAt", Value: time.Now().UnixMilli()},
	})
	if err != nil {
		return errors.Internal("Failed to update listing status", err)
	}

	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(listingCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}

	return nil
}
