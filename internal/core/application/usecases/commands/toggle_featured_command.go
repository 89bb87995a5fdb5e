package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrToggleFeaturedCommandIsNotConstructed = errors.New(
	"ToggleFeaturedCommand must be created via NewToggleFeaturedCommand constructor",
)

// ToggleFeaturedCommand represents a request to flip a menu item's featured
// flag.
type ToggleFeaturedCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleFeaturedCommand creates a command to toggle the featured flag.
func NewToggleFeaturedCommand(menuItemID kernel.UUID) (ToggleFeaturedCommand, error) {
	featuredCommand := ToggleFeaturedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := featuredCommand.setMenuItemID(menuItemID); err != nil {
		return ToggleFeaturedCommand{}, err
	}

	return featuredCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleFeaturedCommand) Validate() error {
	return c.guard.Validate(ErrToggleFeaturedCommandIsNotConstructed)
}

// MenuItemID returns the identifier of the menu item to update.
func (c ToggleFeaturedCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c *ToggleFeaturedCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	c.menuItemID = menuItemID
	return nil
}
