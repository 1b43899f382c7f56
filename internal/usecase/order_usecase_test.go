package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"souqly/internal/domain/entity"
	"souqly/pkg/errors"
)

const testShippingFee = 7.0

func checkoutFixtures(t *testing.T) (*OrderUseCase, *fakeCartRepo, *fakeOrderRepo) {
	t.Helper()

	cartRepo := newFakeCartRepo()
	orderRepo := newFakeOrderRepo(cartRepo)
	userRepo := newFakeUserRepo()
	userRepo.users["buyer"] = &entity.User{ID: "buyer", FirstName: "Amine", LastName: "Ben"}

	cartRepo.Upsert(context.Background(), &entity.CartLine{
		UserID:       "buyer",
		ListingID:    "l1",
		ListingName:  "Calculatrice TI-82",
		ListingPrice: 79.99,
		Quantity:     2,
	})
	cartRepo.Upsert(context.Background(), &entity.CartLine{
		UserID:       "buyer",
		ListingID:    "l2",
		ListingName:  "Livre de maths",
		ListingPrice: 12.50,
		Quantity:     1,
	})

	return NewOrderUseCase(orderRepo, cartRepo, userRepo, testShippingFee), cartRepo, orderRepo
}

func TestCheckoutTotalsAndCartCleanup(t *testing.T) {
	uc, cartRepo, _ := checkoutFixtures(t)

	order, err := uc.Checkout(context.Background(), "buyer", CheckoutInput{
		ShippingAddress: "12 rue des Oliviers",
		PhoneNumber:     "+21612345678",
		PaymentMethod:   "cash_on_delivery",
	})
	require.NoError(t, err)

	// 2 * 79.99 + 12.50 + 7.0 flat shipping
	assert.InDelta(t, 179.48, order.TotalAmount, 0.001)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, "Amine Ben", order.CustomerName)

	// Cart is emptied by the same commit.
	lines, err := cartRepo.ListByUser(context.Background(), "buyer")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCheckoutFailureLeavesCartIntact(t *testing.T) {
	uc, cartRepo, orderRepo := checkoutFixtures(t)
	orderRepo.failWith = errors.Internal("transaction aborted", nil)

	_, err := uc.Checkout(context.Background(), "buyer", CheckoutInput{
		ShippingAddress: "12 rue des Oliviers",
		PhoneNumber:     "+21612345678",
		PaymentMethod:   "cash_on_delivery",
	})
	require.Error(t, err)

	lines, err := cartRepo.ListByUser(context.Background(), "buyer")
	require.NoError(t, err)
	assert.Len(t, lines, 2)
	assert.Empty(t, orderRepo.orders)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	cartRepo := newFakeCartRepo()
	orderRepo := newFakeOrderRepo(cartRepo)
	userRepo := newFakeUserRepo()
	userRepo.users["buyer"] = &entity.User{ID: "buyer"}

	uc := NewOrderUseCase(orderRepo, cartRepo, userRepo, testShippingFee)

	_, err := uc.Checkout(context.Background(), "buyer", CheckoutInput{
		ShippingAddress: "addr",
		PhoneNumber:     "num",
		PaymentMethod:   "cash_on_delivery",
	})
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestGetOrderIsBuyerOnly(t *testing.T) {
	uc, _, orderRepo := checkoutFixtures(t)
	orderRepo.orders["order-1"] = &entity.Order{ID: "order-1", UserID: "buyer"}

	_, err := uc.GetOrder(context.Background(), "order-1", "buyer")
	assert.NoError(t, err)

	_, err = uc.GetOrder(context.Background(), "order-1", "someone-else")
	require.Error(t, err)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)
}

func TestCancelOrderOnlyWhenPending(t *testing.T) {
	uc, _, orderRepo := checkoutFixtures(t)
	orderRepo.orders["order-1"] = &entity.Order{ID: "order-1", UserID: "buyer", Status: entity.OrderStatusShipped}

	err := uc.CancelOrder(context.Background(), "order-1", "buyer")
	require.Error(t, err)

	orderRepo.orders["order-1"].Status = entity.OrderStatusPending
	require.NoError(t, uc.CancelOrder(context.Background(), "order-1", "buyer"))
	assert.Equal(t, entity.OrderStatusCancelled, orderRepo.orders["order-1"].Status)
}
