package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/roles"
	"restaurant/internal/pkg/guard"
)

var ErrIsRoleMemberQueryIsNotConstructed = errors.New(
	"IsRoleMemberQuery must be created via NewIsRoleMemberQuery constructor",
)

// IsRoleMemberQuery asks whether a user currently holds a role. The HTTP
// layer uses it for authorization gates on every staff operation.
type IsRoleMemberQuery struct {
	role   roles.Role
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewIsRoleMemberQuery creates a role membership check.
func NewIsRoleMemberQuery(role roles.Role, userID kernel.UUID) (IsRoleMemberQuery, error) {
	if err := errors.Join(role.Validate(), userID.Validate()); err != nil {
		return IsRoleMemberQuery{}, err
	}

	return IsRoleMemberQuery{
		role:   role,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q IsRoleMemberQuery) Validate() error {
	return q.guard.Validate(ErrIsRoleMemberQueryIsNotConstructed)
}

// Role returns the role being checked.
func (q IsRoleMemberQuery) Role() roles.Role {
	return q.role
}

// UserID returns the identifier of the user being checked.
func (q IsRoleMemberQuery) UserID() kernel.UUID {
	return q.userID
}
