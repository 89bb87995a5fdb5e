package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/roles"
	"restaurant/internal/pkg/guard"
)

var ErrRemoveRoleMemberCommandIsNotConstructed = errors.New(
	"RemoveRoleMemberCommand must be created via NewRemoveRoleMemberCommand constructor",
)

// RemoveRoleMemberCommand represents a request to withdraw a role from a
// user, addressed by user identifier.
type RemoveRoleMemberCommand struct { //nolint:recvcheck //using for validation
	role   roles.Role
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveRoleMemberCommand creates a command to withdraw a role.
func NewRemoveRoleMemberCommand(role roles.Role, userID kernel.UUID) (RemoveRoleMemberCommand, error) {
	roleCommand := RemoveRoleMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		roleCommand.setRole(role),
		roleCommand.setUserID(userID),
	); err != nil {
		return RemoveRoleMemberCommand{}, err
	}

	return roleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveRoleMemberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveRoleMemberCommandIsNotConstructed)
}

// Role returns the role to withdraw.
func (c RemoveRoleMemberCommand) Role() roles.Role {
	return c.role
}

// UserID returns the identifier of the user losing the role.
func (c RemoveRoleMemberCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *RemoveRoleMemberCommand) setRole(role roles.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RemoveRoleMemberCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
