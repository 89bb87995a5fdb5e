package commands

import (
	"context"
)

// ToggleFeaturedCommandHandler handles flipping a menu item's featured flag.
// Returns the flag's value after the flip.
type ToggleFeaturedCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewToggleFeaturedCommandHandler creates a handler for featured toggling.
func NewToggleFeaturedCommandHandler(uowFactory MenuUoWFactory) ToggleFeaturedCommandHandler {
	return ToggleFeaturedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the featured toggle command.
// Returns a not-found error if the menu item does not exist.
func (h ToggleFeaturedCommandHandler) Handle(ctx context.Context, cmd ToggleFeaturedCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItemRepo := uow.MenuItemRepository()
	item, err := menuItemRepo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return false, err
	}

	item.ToggleFeatured()

	if err = menuItemRepo.Update(ctx, item); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return item.Featured(), nil
}
