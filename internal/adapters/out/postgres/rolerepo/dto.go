// Package rolerepo provides data transfer objects and mapping functions for
// user identities and the role-assignment table.
package rolerepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/roles"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for user identities. Rows are
// written by the external auth collaborator; this service reads them.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"not null;uniqueIndex"`
	Email    string
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// RoleAssignmentDTO represents one user holding one role. The composite
// primary key makes repeated grants naturally idempotent.
type RoleAssignmentDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role   int       `gorm:"primaryKey"`
}

// TableName specifies the database table name for role assignments.
func (RoleAssignmentDTO) TableName() string {
	return "role_assignments"
}

func userToDomain(dto UserDTO) (*roles.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return roles.RestoreUser(id, dto.Username, dto.Email)
}
