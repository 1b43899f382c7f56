package repository

import (
	"context"

	"souqly/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
}
