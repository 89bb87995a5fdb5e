package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to add a new menu category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	title      string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a category.
func NewCreateCategoryCommand(categoryID kernel.UUID, title string) (CreateCategoryCommand, error) {
	categoryCommand := CreateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		categoryCommand.setCategoryID(categoryID),
		categoryCommand.setTitle(title),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	return categoryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the identity the new category will be created under.
func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Title returns the category's display title.
func (c CreateCategoryCommand) Title() string {
	return c.title
}

func (c *CreateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateCategoryCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}
