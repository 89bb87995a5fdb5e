package commands

import (
	"context"
)

// RemoveRoleMemberCommandHandler handles withdrawing a role from a user.
// Withdrawing a role the user does not hold fails with a not-found error.
type RemoveRoleMemberCommandHandler struct {
	uowFactory RoleUoWFactory
}

// NewRemoveRoleMemberCommandHandler creates a handler for role withdrawal.
func NewRemoveRoleMemberCommandHandler(uowFactory RoleUoWFactory) RemoveRoleMemberCommandHandler {
	return RemoveRoleMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role withdrawal command.
func (h RemoveRoleMemberCommandHandler) Handle(ctx context.Context, cmd RemoveRoleMemberCommand) error {
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

	user, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = uow.RoleRepository().RemoveMember(ctx, cmd.Role(), user.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
