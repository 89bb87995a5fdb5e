package roles

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is the identity this service knows about a person: customers placing
// orders and staff being assigned to roles. Accounts are created and
// authenticated by the external auth collaborator; here they are read-only
// reference data for role membership and order ownership.
type User struct {
	id       kernel.UUID
	username string
	email    string

	isConstructed bool
}

// NewUser creates a User with a validated identity and non-empty username.
// Email may be empty; not every account carries one.
func NewUser(id kernel.UUID, username, email string) (*User, error) {
	user := &User{
		email:         email,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setUsername(username),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a User from persistence.
func RestoreUser(id kernel.UUID, username, email string) (*User, error) {
	return NewUser(id, username, email)
}

// Validate ensures the User was created through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the user's login name.
func (u *User) Username() string {
	return u.username
}

// Email returns the user's email address, possibly empty.
func (u *User) Email() string {
	return u.email
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}
