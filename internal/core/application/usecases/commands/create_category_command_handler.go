package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
)

// CreateCategoryCommandHandler handles adding a menu category.
type CreateCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory MenuUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category creation command.
func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
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

	category, err := menu.NewCategory(cmd.CategoryID(), cmd.Title())
	if err != nil {
		return err
	}

	if err = uow.CategoryRepository().Add(ctx, category); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
