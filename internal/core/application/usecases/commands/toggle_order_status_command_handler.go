package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// ToggleOrderStatusCommandHandler handles flipping an order's delivery
// status. Returns the status the order holds after the flip so callers can
// report it without a second read.
type ToggleOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewToggleOrderStatusCommandHandler creates a handler for status toggling.
func NewToggleOrderStatusCommandHandler(uowFactory OrderUoWFactory) ToggleOrderStatusCommandHandler {
	return ToggleOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status toggle command.
// Returns a not-found error if the order does not exist.
func (h ToggleOrderStatusCommandHandler) Handle(
	ctx context.Context, cmd ToggleOrderStatusCommand,
) (order.Status, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return order.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return order.Unknown, err
	}

	if err = o.ToggleStatus(); err != nil {
		return order.Unknown, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return order.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return order.Unknown, err
	}

	return o.Status(), nil
}
