package commands

import (
	"context"
)

// AssignDeliveryCrewCommandHandler handles assigning a delivery crew member
// to an order. Both the order and the user must exist; the assignment itself
// does not require the user to hold the delivery-crew role, matching how
// managers dispatch ad-hoc helpers.
type AssignDeliveryCrewCommandHandler struct {
	uowFactory AssignUoWFactory
}

// NewAssignDeliveryCrewCommandHandler creates a handler for crew assignment.
func NewAssignDeliveryCrewCommandHandler(uowFactory AssignUoWFactory) AssignDeliveryCrewCommandHandler {
	return AssignDeliveryCrewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the crew assignment command.
// Returns a not-found error if either the order or the user does not exist.
func (h AssignDeliveryCrewCommandHandler) Handle(ctx context.Context, cmd AssignDeliveryCrewCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	crew, err := uow.UserRepository().Get(ctx, cmd.CrewID())
	if err != nil {
		return err
	}

	if err = o.AssignCrew(crew.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
