package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order projection with its items joined
// to menu item titles.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order query.
// Returns a not-found error if the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.readHeader(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Items, err = h.readItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) readHeader(ctx context.Context, orderID kernel.UUID) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id, customerID uuid.UUID
	var crewID uuid.NullUUID
	var total decimal.Decimal
	var delivered bool
	var date time.Time

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			delivery_crew_id,
			total,
			delivered,
			date
		FROM orders
		WHERE id = ?
	`, orderID.String()).Row()

	err := row.Scan(&id, &customerID, &crewID, &total, &delivered, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if crewID.Valid {
		crew, crewErr := kernel.UUIDFromBytes(crewID.UUID[:])
		if crewErr != nil {
			return GetOrderQueryResponse{}, crewErr
		}
		resp.DeliveryCrewID = &crew
	}

	resp.Total, err = kernel.NewMoneyFromDecimal(total)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.StatusFromDelivered(delivered)
	resp.Date = date

	return resp, nil
}

func (h GetOrderQueryHandler) readItems(ctx context.Context, orderID kernel.UUID) ([]OrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.menu_item_id,
			mi.title,
			oi.quantity,
			oi.unit_price,
			oi.price
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = ?
		ORDER BY mi.title
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var menuItemID uuid.UUID
		var unitPrice, price decimal.Decimal

		err = rows.Scan(
			&menuItemID,
			&item.Title,
			&item.Quantity,
			&unitPrice,
			&price,
		)
		if err != nil {
			return nil, err
		}

		item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:])
		if err != nil {
			return nil, err
		}
		item.UnitPrice, err = kernel.NewMoneyFromDecimal(unitPrice)
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
