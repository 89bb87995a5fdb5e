// Package roles provides the staff side of the domain: the two named roles
// the business recognizes (managers and delivery crew) and the user identity
// this service sees. Role membership is an explicit assignment table rather
// than global group state, so authorization predicates are plain queries.
package roles

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Role names a staff capability group. The ordering workflow only ever asks
// boolean questions about roles (is this principal a manager?), so Role is a
// small closed enumeration.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Manager can see and manage every order and staff assignments.
	Manager

	// DeliveryCrew delivers orders and sees only orders assigned to them.
	DeliveryCrew
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:  "unknown",
		Manager:      "manager",
		DeliveryCrew: "delivery-crew",
	}
}

// ParseRole maps a wire name ("manager", "delivery-crew") onto a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != UnknownRole && name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Validate checks if the Role is one of the two known roles.
func (r Role) Validate() error {
	if r != Manager && r != DeliveryCrew {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
