package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
	ErrOrdersScopeIsInvalid = errors.New("orders scope is invalid")
)

// OrdersScope selects which orders a listing returns. The scope is decided by
// the caller from the requester's roles, not inside the query.
type OrdersScope int

const (
	// ScopeUnknown represents an invalid or undefined scope.
	ScopeUnknown OrdersScope = iota

	// ScopeAll returns every order. For managers and administrators.
	ScopeAll

	// ScopeAssigned returns orders assigned to the requesting crew member.
	ScopeAssigned

	// ScopeOwn returns orders placed by the requesting customer.
	ScopeOwn
)

// GetOrdersQuery lists orders visible to a requester.
//
// Example:
//
//	query, err := NewGetOrdersQuery(queries.ScopeOwn, customerID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	scope  OrdersScope
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query. The user identifier names
// the requester; it narrows the result for ScopeAssigned and ScopeOwn and is
// ignored for ScopeAll.
func NewGetOrdersQuery(scope OrdersScope, userID kernel.UUID) (GetOrdersQuery, error) {
	if scope != ScopeAll && scope != ScopeAssigned && scope != ScopeOwn {
		return GetOrdersQuery{}, ErrOrdersScopeIsInvalid
	}
	if err := userID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		scope:  scope,
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Scope returns the visibility scope of the listing.
func (q GetOrdersQuery) Scope() OrdersScope {
	return q.scope
}

// UserID returns the identifier of the requesting user.
func (q GetOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// GetOrdersQueryResponse represents one order in a listing.
type GetOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	DeliveryCrewID *kernel.UUID
	Total          kernel.Money
	Status         order.Status
	Date           time.Time
}
