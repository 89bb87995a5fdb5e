// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. A cart is stored purely as its lines; the composite
// primary key (user, menu item) is the database-level guarantee behind the
// one-line-per-menu-item invariant.
package cartrepo

import (
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineDTO represents the database structure for persisting cart lines.
// CreatedAt feeds the stale-cart purge job.
type CartLineDTO struct {
	UserID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt  time.Time       `gorm:"not null;index"`
}

// TableName specifies the database table name for cart lines.
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func lineFromDomain(customerID kernel.UUID, line *cart.Line) CartLineDTO {
	return CartLineDTO{
		UserID:     customerID.Bytes(),
		MenuItemID: line.MenuItemID().Bytes(),
		Quantity:   line.Quantity(),
		UnitPrice:  line.UnitPrice().Decimal(),
		Price:      line.Price().Decimal(),
	}
}

func lineToDomain(dto CartLineDTO) (*cart.Line, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoneyFromDecimal(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	return cart.RestoreLine(menuItemID, dto.Quantity, unitPrice, price)
}
