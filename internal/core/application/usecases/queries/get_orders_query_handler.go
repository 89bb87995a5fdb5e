package queries

import (
	"context"
	"database/sql"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database. The scope decided by
// the caller turns into a WHERE clause; sorting is newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the order listing query.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	const baseSQL = `
		SELECT
			id,
			customer_id,
			delivery_crew_id,
			total,
			delivered,
			date
		FROM orders
	`
	const orderSQL = ` ORDER BY date DESC, id`

	tx := h.db.WithContext(ctx)

	var rows *sql.Rows
	var err error
	switch query.Scope() {
	case ScopeAssigned:
		rows, err = tx.Raw(baseSQL+` WHERE delivery_crew_id = ?`+orderSQL, query.UserID().String()).Rows()
	case ScopeOwn:
		rows, err = tx.Raw(baseSQL+` WHERE customer_id = ?`+orderSQL, query.UserID().String()).Rows()
	default:
		rows, err = tx.Raw(baseSQL + orderSQL).Rows()
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id, customerID uuid.UUID
		var crewID uuid.NullUUID
		var total decimal.Decimal
		var delivered bool
		var date time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&crewID,
			&total,
			&delivered,
			&date,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}
		if crewID.Valid {
			crew, crewErr := kernel.UUIDFromBytes(crewID.UUID[:])
			if crewErr != nil {
				return nil, crewErr
			}
			resp.DeliveryCrewID = &crew
		}

		resp.Total, err = kernel.NewMoneyFromDecimal(total)
		if err != nil {
			return nil, err
		}
		resp.Status = order.StatusFromDelivered(delivered)
		resp.Date = date

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
