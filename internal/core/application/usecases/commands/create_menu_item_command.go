package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrTitleIsRequired = errors.New("title is required")
)

// CreateMenuItemCommand represents a request to add a new dish to the menu.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("12.50")
//	cmd, err := NewCreateMenuItemCommand(kernel.NewUUID(), "Margherita", price, categoryID)
//	if err != nil {
//	    return fmt.Errorf("invalid menu item: %w", err)
//	}
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID
	title      string
	price      kernel.Money
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
// Validates identifiers, requires a non-empty title and a constructed price.
func NewCreateMenuItemCommand(
	menuItemID kernel.UUID, title string, price kernel.Money, categoryID kernel.UUID,
) (CreateMenuItemCommand, error) {
	itemCommand := CreateMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setMenuItemID(menuItemID),
		itemCommand.setTitle(title),
		itemCommand.setPrice(price),
		itemCommand.setCategoryID(categoryID),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identity the new menu item will be created under.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Title returns the menu item's display title.
func (c CreateMenuItemCommand) Title() string {
	return c.title
}

// Price returns the menu item's unit price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// CategoryID returns the identifier of the category the item belongs to.
func (c CreateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c *CreateMenuItemCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *CreateMenuItemCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateMenuItemCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}
