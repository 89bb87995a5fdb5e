package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetMenuItemsQueryIsNotConstructed = errors.New(
		"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
	)
	ErrOrderByIsInvalid = errors.New("order by must be one of: price, category")
)

// Sort keys accepted by the menu listing.
const (
	OrderByPrice    = "price"
	OrderByCategory = "category"
)

// GetMenuItemsQuery lists menu items, optionally filtered by a search term
// matched against item and category titles, and sorted by price or category.
//
// Example:
//
//	query, err := NewGetMenuItemsQuery("pizza", OrderByPrice)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetMenuItemsQueryHandler(db)
//	items, err := handler.Handle(ctx, query)
type GetMenuItemsQuery struct {
	search  string
	orderBy string

	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a menu listing query. Both the search term and
// the sort key may be empty; an empty sort key sorts by item title.
func NewGetMenuItemsQuery(search, orderBy string) (GetMenuItemsQuery, error) {
	if orderBy != "" && orderBy != OrderByPrice && orderBy != OrderByCategory {
		return GetMenuItemsQuery{}, ErrOrderByIsInvalid
	}

	return GetMenuItemsQuery{
		search:  search,
		orderBy: orderBy,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

// Search returns the search term, possibly empty.
func (q GetMenuItemsQuery) Search() string {
	return q.search
}

// OrderBy returns the sort key, possibly empty.
func (q GetMenuItemsQuery) OrderBy() string {
	return q.orderBy
}

// GetMenuItemsQueryResponse represents one menu item in a listing.
type GetMenuItemsQueryResponse struct {
	ID            kernel.UUID
	Title         string
	Price         kernel.Money
	Featured      bool
	CategoryID    kernel.UUID
	CategoryTitle string
}
