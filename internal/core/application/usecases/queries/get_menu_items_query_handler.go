package queries

import (
	"context"
	"database/sql"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuItemsQueryHandler lists the menu from the database. The sort key is
// mapped onto a whitelisted ORDER BY clause, never interpolated from input.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for menu listing queries.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle executes the menu listing query.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]GetMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	baseSQL := `
		SELECT
			mi.id,
			mi.title,
			mi.price,
			mi.featured,
			c.id,
			c.title
		FROM menu_items mi
		JOIN categories c ON c.id = mi.category_id
	`

	var orderSQL string
	switch query.OrderBy() {
	case OrderByPrice:
		orderSQL = ` ORDER BY mi.price, mi.title`
	case OrderByCategory:
		orderSQL = ` ORDER BY c.title, mi.title`
	default:
		orderSQL = ` ORDER BY mi.title`
	}

	tx := h.db.WithContext(ctx)

	var rows *sql.Rows
	var err error
	if search := query.Search(); search != "" {
		pattern := "%" + search + "%"
		rows, err = tx.Raw(
			baseSQL+` WHERE mi.title ILIKE ? OR c.title ILIKE ?`+orderSQL,
			pattern, pattern,
		).Rows()
	} else {
		rows, err = tx.Raw(baseSQL + orderSQL).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetMenuItemsQueryResponse, 0)
	for rows.Next() {
		var item GetMenuItemsQueryResponse
		var id, categoryID uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&item.Title,
			&price,
			&item.Featured,
			&categoryID,
			&item.CategoryTitle,
		)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		item.CategoryID, err = kernel.UUIDFromBytes(categoryID[:])
		if err != nil {
			return nil, err
		}
		item.Price, err = kernel.NewMoneyFromDecimal(price)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
