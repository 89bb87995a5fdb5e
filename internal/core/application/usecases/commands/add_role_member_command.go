package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/roles"
	"restaurant/internal/pkg/guard"
)

var (
	ErrAddRoleMemberCommandIsNotConstructed = errors.New(
		"AddRoleMemberCommand must be created via NewAddRoleMemberCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
)

// AddRoleMemberCommand represents a request to grant a role to a user,
// addressed by username. Granting an already held role succeeds without
// duplicating the assignment.
type AddRoleMemberCommand struct { //nolint:recvcheck //using for validation
	role     roles.Role
	username string

	guard guard.ConstructorGuard
}

// NewAddRoleMemberCommand creates a command to grant a role.
func NewAddRoleMemberCommand(role roles.Role, username string) (AddRoleMemberCommand, error) {
	roleCommand := AddRoleMemberCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		roleCommand.setRole(role),
		roleCommand.setUsername(username),
	); err != nil {
		return AddRoleMemberCommand{}, err
	}

	return roleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddRoleMemberCommand) Validate() error {
	return c.guard.Validate(ErrAddRoleMemberCommandIsNotConstructed)
}

// Role returns the role to grant.
func (c AddRoleMemberCommand) Role() roles.Role {
	return c.role
}

// Username returns the login name of the user receiving the role.
func (c AddRoleMemberCommand) Username() string {
	return c.username
}

func (c *AddRoleMemberCommand) setRole(role roles.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *AddRoleMemberCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}

	c.username = username
	return nil
}
