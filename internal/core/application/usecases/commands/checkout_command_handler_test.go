package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeCartWithLines(t *testing.T, customerID kernel.UUID) *cart.Cart {
	t.Helper()
	priceA, err := kernel.NewMoneyFromString("9.00")
	require.NoError(t, err)
	priceB, err := kernel.NewMoneyFromString("4.25")
	require.NoError(t, err)

	lineA, err := cart.NewLine(kernel.NewUUID(), 2, priceA)
	require.NoError(t, err)
	lineB, err := cart.NewLine(kernel.NewUUID(), 1, priceB)
	require.NoError(t, err)

	c, err := cart.RestoreCart(customerID, []*cart.Line{lineA, lineB})
	require.NoError(t, err)
	return c
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCheckoutCommand(orderID, customerID)

	fullCart := makeCartWithLines(t, customerID)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", mock.Anything, customerID).Return(fullCart, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(orderID) &&
				o.CustomerID().IsEqual(customerID) &&
				o.Status() == order.Pending &&
				len(o.Items()) == 2 &&
				o.Total().String() == "22.25"
		})).Return(nil).Once(),
		cartRepo.On("Clear", mock.Anything, customerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	cartRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCheckoutCommand(kernel.NewUUID(), customerID)

	emptyCart, err := cart.NewCart(customerID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", mock.Anything, customerID).Return(emptyCart, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrCartIsEmpty)
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, _ := commands.NewCheckoutCommand(kernel.NewUUID(), customerID)

	fullCart := makeCartWithLines(t, customerID)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetByCustomer", mock.Anything, customerID).Return(fullCart, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	cartRepo.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CheckoutCommand{} // not constructed properly
	factory := new(MockCheckoutUoWFactory)
	h := commands.NewCheckoutCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
