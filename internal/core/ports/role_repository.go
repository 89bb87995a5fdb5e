package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/roles"
)

// UserRepository reads user identities. Accounts are created by the external
// auth collaborator; this service only resolves them for role assignments and
// order references.
type UserRepository interface {
	// Get retrieves a user by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*roles.User, error)

	// GetByUsername retrieves a user by login name. Role additions address
	// users by username.
	GetByUsername(ctx context.Context, username string) (*roles.User, error)
}

// RoleRepository manages the explicit role-assignment table. The ordering
// workflow consumes it as boolean capability checks; the staff-management
// operations mutate it.
type RoleRepository interface {
	// IsMember reports whether the user currently holds the role.
	IsMember(ctx context.Context, role roles.Role, userID kernel.UUID) (bool, error)

	// AddMember assigns the role to the user. Assigning an already held role
	// succeeds without duplicating the assignment.
	AddMember(ctx context.Context, role roles.Role, userID kernel.UUID) error

	// RemoveMember withdraws the role from the user. Returns a not-found
	// error if the user does not hold the role.
	RemoveMember(ctx context.Context, role roles.Role, userID kernel.UUID) error
}
