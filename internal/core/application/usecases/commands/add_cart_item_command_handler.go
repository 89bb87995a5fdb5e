package commands

import (
	"context"

	"restaurant/internal/core/domain/model/cart"
)

// AddCartItemCommandHandler handles adding a menu item to a customer's cart.
// Looks the item up in the catalog, snapshots its current price onto the new
// line and persists it. Adding an item that is already in the cart fails with
// an already-exists error; callers translate that into a conflict response.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart addition command.
// The catalog read and the line insert run in one transaction so the
// snapshotted price matches a menu item that existed at insert time.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
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

	menuItem, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	line, err := cart.NewLine(menuItem.ID(), cmd.Quantity(), menuItem.Price())
	if err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	// The aggregate rejects a duplicate menu item before the database
	// uniqueness constraint would.
	if err = customerCart.AddLine(line); err != nil {
		return err
	}

	if err = cartRepo.AddLine(ctx, cmd.CustomerID(), line); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
