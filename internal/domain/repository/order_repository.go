package repository

import (
	"context"

	"souqly/internal/domain/entity"
)

type OrderRepository interface {
	// CreateFromCart writes the order, its item snapshots and the deletion of
	// every source cart line as a single atomic commit: on any failure nothing
	// is persisted.
	CreateFromCart(ctx context.Context, order *entity.Order, cartLineIDs []string) error

	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
