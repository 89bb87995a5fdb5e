// Package menurepo provides data transfer objects and mapping functions for
// catalog persistence: menu items and the categories that group them.
package menurepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO represents the database structure for persisting menu items.
// Prices are stored as exact numerics, never floats.
type MenuItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title      string          `gorm:"not null"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Featured   bool            `gorm:"not null"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for menu items.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title string    `gorm:"not null;uniqueIndex"`
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

func menuItemFromDomain(item *menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         item.ID().Bytes(),
		Title:      item.Title(),
		Price:      item.Price().Decimal(),
		Featured:   item.Featured(),
		CategoryID: item.CategoryID().Bytes(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*menu.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	return menu.RestoreMenuItem(id, dto.Title, price, dto.Featured, categoryID)
}

func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:    category.ID().Bytes(),
		Title: category.Title(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreCategory(id, dto.Title)
}
