package commands

import (
	"context"
)

// AddRoleMemberCommandHandler handles granting a role to a user. The user is
// resolved by username first, so granting to an unknown username surfaces as
// a not-found error rather than a dangling assignment.
type AddRoleMemberCommandHandler struct {
	uowFactory RoleUoWFactory
}

// NewAddRoleMemberCommandHandler creates a handler for role grants.
func NewAddRoleMemberCommandHandler(uowFactory RoleUoWFactory) AddRoleMemberCommandHandler {
	return AddRoleMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the role grant command.
// Returns a not-found error if no user has the given username.
func (h AddRoleMemberCommandHandler) Handle(ctx context.Context, cmd AddRoleMemberCommand) error {
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

	user, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		return err
	}

	if err = uow.RoleRepository().AddMember(ctx, cmd.Role(), user.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
