package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a customer's cart projection. An empty result set
// is a valid empty cart, not an error.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query. Returns the cart lines joined with menu
// item titles, plus the exact decimal total of the line prices.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Lines: make([]CartLineResponse, 0),
		Total: kernel.ZeroMoney(),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			cl.menu_item_id,
			mi.title,
			cl.quantity,
			cl.unit_price,
			cl.price
		FROM cart_lines cl
		JOIN menu_items mi ON mi.id = cl.menu_item_id
		WHERE cl.user_id = ?
		ORDER BY mi.title
	`, query.CustomerID().String()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var line CartLineResponse
		var menuItemID uuid.UUID
		var unitPrice, price decimal.Decimal

		err = rows.Scan(
			&menuItemID,
			&line.Title,
			&line.Quantity,
			&unitPrice,
			&price,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(menuItemID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		line.MenuItemID = itemID

		line.UnitPrice, err = kernel.NewMoneyFromDecimal(unitPrice)
		if err != nil {
			return GetCartQueryResponse{}, err
		}
		line.Price, err = kernel.NewMoneyFromDecimal(price)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		response.Total = response.Total.Add(line.Price)
		response.Lines = append(response.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
