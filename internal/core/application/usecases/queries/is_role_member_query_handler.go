package queries

import (
	"context"

	"gorm.io/gorm"
)

// IsRoleMemberQueryHandler answers role membership checks with a single
// EXISTS query.
type IsRoleMemberQueryHandler struct {
	db *gorm.DB
}

// NewIsRoleMemberQueryHandler creates a handler for role membership checks.
func NewIsRoleMemberQueryHandler(db *gorm.DB) IsRoleMemberQueryHandler {
	return IsRoleMemberQueryHandler{db: db}
}

// Handle executes the membership check.
func (h IsRoleMemberQueryHandler) Handle(ctx context.Context, query IsRoleMemberQuery) (bool, error) {
	if err := query.Validate(); err != nil {
		return false, err
	}

	var isMember bool
	row := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1
			FROM role_assignments
			WHERE role = ? AND user_id = ?
		)
	`, int(query.Role()), query.UserID().String()).Row()

	if err := row.Scan(&isMember); err != nil {
		return false, err
	}

	return isMember, nil
}
