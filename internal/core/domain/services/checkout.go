package services

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// ErrCartIsEmpty is returned when checkout is attempted on a cart without
// lines. Callers translate it into a bad-request response.
var ErrCartIsEmpty = errors.New("cart is empty")

// CheckoutService is the domain service that converts a customer's cart into
// an order. It owns the cart-to-order mapping: one order item is materialized
// per cart line, carrying over quantity and the snapshotted unit price, and
// the order constructor fixes the total as the exact sum of those line
// prices.
//
// The service is pure domain logic; the command handler around it supplies
// the transaction boundary that makes order creation and cart deletion
// all-or-nothing.
//
// Example usage:
//
//	svc := services.NewCheckoutService()
//	o, err := svc.Checkout(c, kernel.NewUUID(), time.Now())
//	if errors.Is(err, services.ErrCartIsEmpty) {
//	    // nothing to check out
//	}
type CheckoutService struct{}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// Checkout builds a pending order from the given cart.
//
// Business rules:
//   - the cart must be valid and non-empty
//   - every cart line becomes exactly one order item
//   - the order total equals the exact decimal sum of the cart line prices
//     present at call time
//
// The cart itself is not mutated here; the caller clears it in the same
// transaction that persists the order.
func (s CheckoutService) Checkout(c *cart.Cart, orderID kernel.UUID, date time.Time) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.IsEmpty() {
		return nil, ErrCartIsEmpty
	}

	items := make([]*order.Item, 0, len(c.Lines()))
	for _, line := range c.Lines() {
		item, err := order.RestoreItem(line.MenuItemID(), line.Quantity(), line.UnitPrice(), line.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.NewOrder(orderID, c.CustomerID(), date, items)
}
