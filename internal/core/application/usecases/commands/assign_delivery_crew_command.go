package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAssignDeliveryCrewCommandIsNotConstructed = errors.New(
	"AssignDeliveryCrewCommand must be created via NewAssignDeliveryCrewCommand constructor",
)

// AssignDeliveryCrewCommand represents a request to put a delivery crew
// member on an order. Assigning again replaces the previous assignment.
type AssignDeliveryCrewCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	crewID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCrewCommand creates a command to assign a crew member to
// an order.
func NewAssignDeliveryCrewCommand(orderID, crewID kernel.UUID) (AssignDeliveryCrewCommand, error) {
	assignCommand := AssignDeliveryCrewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setOrderID(orderID),
		assignCommand.setCrewID(crewID),
	); err != nil {
		return AssignDeliveryCrewCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCrewCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCrewCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignDeliveryCrewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CrewID returns the identifier of the crew member being assigned.
func (c AssignDeliveryCrewCommand) CrewID() kernel.UUID {
	return c.crewID
}

func (c *AssignDeliveryCrewCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryCrewCommand) setCrewID(crewID kernel.UUID) error {
	if err := crewID.Validate(); err != nil {
		return err
	}

	c.crewID = crewID
	return nil
}
