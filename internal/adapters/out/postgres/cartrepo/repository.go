package cartrepo

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetByCustomer retrieves the customer's cart. A customer without stored
// lines gets a valid empty cart.
func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "user_id = ?", customerID.Bytes()).Error; err != nil {
		return nil, err
	}

	lines := make([]*cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		line, err := lineToDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(customerID, lines)
}

// AddLine persists a new cart line. The composite primary key turns a
// concurrent duplicate add into an already-exists error.
func (r *GormCartRepository) AddLine(ctx context.Context, customerID kernel.UUID, line *cart.Line) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := line.Validate(); err != nil {
		return err
	}

	dto := lineFromDomain(customerID, line)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("cart line", line.MenuItemID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(customerID, line)
	return nil
}

// RemoveLine deletes the line holding the given menu item.
func (r *GormCartRepository) RemoveLine(ctx context.Context, customerID, menuItemID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id = ?", customerID.Bytes(), menuItemID.Bytes()).
		Delete(&CartLineDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cart line", menuItemID.String())
	}

	return nil
}

// Clear deletes all of the customer's cart lines. Clearing an empty cart
// succeeds.
func (r *GormCartRepository) Clear(ctx context.Context, customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("user_id = ?", customerID.Bytes()).
		Delete(&CartLineDTO{}).Error
}

// DeleteOlderThan deletes cart lines added before the cutoff, across all
// customers. Returns the number of lines removed.
func (r *GormCartRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&CartLineDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
