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
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func (r *firestoreCartRepository) cartOf(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("cart")
}

func (r *firestoreCartRepository) Upsert(ctx context.Context, line *entity.CartLine) error {
	if line.ID == "" {
		doc := r.cartOf(line.UserID).NewDoc()
		line.ID = doc.ID
	}
	if line.CreatedAt == 0 {
		line.CreatedAt = time.Now().UnixMilli()
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}

	_, err := r.cartOf(line.UserID).Doc(line.ID).Set(ctx, line)
	if err != nil {
		return errors.Internal("Failed to save cart line", err)
	}

	return nil
}

func (r *firestoreCartRepository) GetLine(ctx context.Context, userID, lineID string) (*entity.CartLine, error) {
	doc, err := r.cartOf(userID).Doc(lineID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Cart line", err)
		}
		return nil, errors.Internal("Failed to get cart line", err)
	}

	var line entity.CartLine
	if err := doc.DataTo(&line); err != nil {
		return nil, errors.Internal("Failed to parse cart line data", err)
	}

	return &line, nil
}

func (r *firestoreCartRepository) FindByListing(ctx context.Context, userID, listingID string) (*entity.CartLine, error) {
	query := r.cartOf(userID).Where("productId", "==", listingID).Limit(1)
	iter := query.Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		// No line for this listing yet; the caller creates one.
		return nil, nil
	}
	if err != nil {
		return nil, errors.Internal("Failed to query cart", err)
	}

	var line entity.CartLine
	if err := doc.DataTo(&line); err != nil {
		return nil, errors.Internal("Failed to parse cart line data", err)
	}

	return &line, nil
}

func (r *firestoreCartRepository) ListByUser(ctx context.Context, userID string) ([]*entity.CartLine, error) {
	iter := r.cartOf(userID).OrderBy("timestamp", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var lines []*entity.CartLine
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate cart", err)
		}

		var line entity.CartLine
		if err := doc.DataTo(&line); err != nil {
			return nil, errors.Internal("Failed to parse cart line data", err)
		}
		lines = append(lines, &line)
	}

	return lines, nil
}

func (r *firestoreCartRepository) UpdateQuantity(ctx context.Context, userID, lineID string, quantity int) error {
	if quantity < 1 {
		return errors.BadRequest("Quantity must be at least 1", nil)
	}

	_, err := r.cartOf(userID).Doc(lineID).Update(ctx, []firestore.Update{
		{Path: "quantity", Value: quantity},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Cart line", err)
		}
		return errors.Internal("Failed to update cart quantity", err)
	}

	return nil
}

func (r *firestoreCartRepository) Remove(ctx context.Context, userID, lineID string) error {
	_, err := r.cartOf(userID).Doc(lineID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove cart line", err)
	}

	return nil
}
