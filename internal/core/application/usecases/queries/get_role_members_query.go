package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/roles"
	"restaurant/internal/pkg/guard"
)

var ErrGetRoleMembersQueryIsNotConstructed = errors.New(
	"GetRoleMembersQuery must be created via NewGetRoleMembersQuery constructor",
)

// GetRoleMembersQuery lists the users currently holding a role.
type GetRoleMembersQuery struct {
	role roles.Role

	guard guard.ConstructorGuard
}

// NewGetRoleMembersQuery creates a role membership listing query.
func NewGetRoleMembersQuery(role roles.Role) (GetRoleMembersQuery, error) {
	if err := role.Validate(); err != nil {
		return GetRoleMembersQuery{}, err
	}

	return GetRoleMembersQuery{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRoleMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetRoleMembersQueryIsNotConstructed)
}

// Role returns the role whose members are requested.
func (q GetRoleMembersQuery) Role() roles.Role {
	return q.role
}

// GetRoleMembersQueryResponse represents one user holding the role.
type GetRoleMembersQueryResponse struct {
	ID       kernel.UUID
	Username string
	Email    string
}
