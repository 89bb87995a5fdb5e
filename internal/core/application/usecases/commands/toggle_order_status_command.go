package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrToggleOrderStatusCommandIsNotConstructed = errors.New(
	"ToggleOrderStatusCommand must be created via NewToggleOrderStatusCommand constructor",
)

// ToggleOrderStatusCommand represents a request to flip an order's delivery
// status between pending and out-for-delivery.
type ToggleOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewToggleOrderStatusCommand creates a command to toggle the order's status.
func NewToggleOrderStatusCommand(orderID kernel.UUID) (ToggleOrderStatusCommand, error) {
	statusCommand := ToggleOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := statusCommand.setOrderID(orderID); err != nil {
		return ToggleOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ToggleOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrToggleOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c ToggleOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ToggleOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
