package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/services"
)

// CheckoutCommandHandler orchestrates the checkout workflow: it reads the
// customer's cart, asks the domain service to materialize an order from it,
// persists the order and clears the cart.
//
// All of that happens inside a single transaction. A failure at any step
// leaves both the cart and the order store untouched, so a customer can never
// end up with a placed order and a still-full cart, or the reverse.
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
func NewCheckoutCommandHandler(uowFactory CheckoutUoWFactory) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command.
// Returns services.ErrCartIsEmpty when the customer has nothing in the cart.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	newOrder, err := services.NewCheckoutService().Checkout(customerCart, cmd.OrderID(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = cartRepo.Clear(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
