package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRoleMembersQueryHandler lists the users holding a role, sorted by
// username.
type GetRoleMembersQueryHandler struct {
	db *gorm.DB
}

// NewGetRoleMembersQueryHandler creates a handler for role membership queries.
func NewGetRoleMembersQueryHandler(db *gorm.DB) GetRoleMembersQueryHandler {
	return GetRoleMembersQueryHandler{db: db}
}

// Handle executes the role membership listing query.
func (h GetRoleMembersQueryHandler) Handle(
	ctx context.Context,
	query GetRoleMembersQuery,
) ([]GetRoleMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.username,
			u.email
		FROM users u
		JOIN role_assignments ra ON ra.user_id = u.id
		WHERE ra.role = ?
		ORDER BY u.username
	`, int(query.Role())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]GetRoleMembersQueryResponse, 0)
	for rows.Next() {
		var member GetRoleMembersQueryResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &member.Username, &member.Email); err != nil {
			return nil, err
		}

		member.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
