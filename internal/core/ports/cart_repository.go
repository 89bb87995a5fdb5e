package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for customer carts.
// Carts are addressed by the customer who owns them; a customer with no
// stored lines owns a valid empty cart.
type CartRepository interface {
	// GetByCustomer retrieves the customer's cart. A customer without stored
	// lines gets an empty cart, not an error.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// AddLine persists a new cart line. Returns an already-exists error if a
	// line for the same (customer, menu item) pair is stored; the database
	// uniqueness constraint backs the aggregate's in-memory check against
	// concurrent adds.
	AddLine(ctx context.Context, customerID kernel.UUID, line *cart.Line) error

	// RemoveLine deletes the line holding the given menu item.
	// Returns a not-found error if no such line exists.
	RemoveLine(ctx context.Context, customerID kernel.UUID, menuItemID kernel.UUID) error

	// Clear deletes all of the customer's cart lines. Clearing an already
	// empty cart succeeds.
	Clear(ctx context.Context, customerID kernel.UUID) error

	// DeleteOlderThan deletes cart lines added before the cutoff, across all
	// customers. Returns the number of lines removed. Used by the stale-cart
	// purge job.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
