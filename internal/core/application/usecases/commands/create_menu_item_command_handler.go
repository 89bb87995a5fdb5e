package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

// CreateMenuItemCommandHandler handles adding a dish to the menu. The
// referenced category must already exist.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the menu item creation command.
// Returns a not-found error if the category does not exist.
func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
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

	category, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	item, err := menu.NewMenuItem(cmd.MenuItemID(), cmd.Title(), cmd.Price(), category.ID())
	if err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
