// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order row owns its item rows; deleting the order
// cascades to the items at the database level.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The delivery status is stored as the delivered boolean; the stored total is
// authoritative and never recomputed from the items.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryCrewID *uuid.UUID      `gorm:"type:uuid;index"`
	Total          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Delivered      bool            `gorm:"not null"`
	Date           time.Time       `gorm:"not null;index"`
	Items          []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents a materialized order line. Items are write-once:
// they are inserted with the order and only ever removed by cascade.
type OrderItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

// TableName specifies the database table name for order items.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var crewID *uuid.UUID
	if id := o.DeliveryCrew(); id != nil {
		raw := id.Bytes()
		crewID = &raw
	}

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    o.ID().Bytes(),
			MenuItemID: item.MenuItemID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Decimal(),
			Price:      item.Price().Decimal(),
		})
	}

	return OrderDTO{
		ID:             o.ID().Bytes(),
		CustomerID:     o.CustomerID().Bytes(),
		DeliveryCrewID: crewID,
		Total:          o.Total().Decimal(),
		Delivered:      o.Status().IsOutForDelivery(),
		Date:           o.Date(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var crewID *kernel.UUID
	if dto.DeliveryCrewID != nil {
		cID, crewErr := kernel.UUIDFromBytes((*dto.DeliveryCrewID)[:])
		if crewErr != nil {
			return nil, crewErr
		}
		crewID = &cID
	}

	total, err := kernel.NewMoneyFromDecimal(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		total,
		order.StatusFromDelivered(dto.Delivered),
		crewID,
		dto.Date,
		items,
	)
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
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

	return order.RestoreItem(menuItemID, dto.Quantity, unitPrice, price)
}
