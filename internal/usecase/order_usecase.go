package usecase

import (
	"context"

	"souqly/internal/domain/entity"
	"souqly/internal/domain/repository"
	"souqly/pkg/errors"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	userRepo    repository.UserRepository
	shippingFee float64
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	userRepo repository.UserRepository,
	shippingFee float64,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		shippingFee: shippingFee,
	}
}

type CheckoutInput struct {
	ShippingAddress string
	PhoneNumber     string
	PaymentMethod   string
}

// Checkout turns the user's cart into an order. The order document, its
// item snapshots and the cart cleanup commit atomically: a failed checkout
// leaves the cart untouched.
func (uc *OrderUseCase) Checkout(ctx context.Context, userID string, input CheckoutInput) (*entity.Order, error) {
	lines, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		UserID:          userID,
		CustomerName:    user.DisplayName(),
		ShippingAddress: input.ShippingAddress,
		PhoneNumber:     input.PhoneNumber,
		PaymentMethod:   input.PaymentMethod,
		Status:          entity.OrderStatusPending,
	}

	lineIDs := make([]string, 0, len(lines))
	for _, line := range lines {
		order.Items = append(order.Items, entity.OrderItem{
			ListingID:    line.ListingID,
			ListingName:  line.ListingName,
			ListingImage: line.ListingImage,
			Quantity:     line.Quantity,
			Price:        line.ListingPrice,
		})
		order.TotalAmount += line.Subtotal()
		lineIDs = append(lineIDs, line.ID)
	}
	order.TotalAmount += uc.shippingFee

	if err := uc.orderRepo.CreateFromCart(ctx, order, lineIDs); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id, userID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, errors.Forbidden("You don't have permission to view this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByUser(ctx, userID, limit, offset)
}

func (uc *OrderUseCase) CancelOrder(ctx context.Context, id, userID string) error {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if order.UserID != userID {
		return errors.Forbidden("You don't have permission to cancel this order", nil)
	}
	if order.Status != entity.OrderStatusPending {
		return errors.BadRequest("Only pending orders can be cancelled", nil)
	}

	return uc.orderRepo.UpdateStatus(ctx, id, entity.OrderStatusCancelled)
}
