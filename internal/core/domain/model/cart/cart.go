package cart

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Cart is the per-customer collection of lines pending checkout. It is the
// aggregate root that enforces the cart's single structural invariant: at
// most one line per menu item.
//
// A cart has no identity of its own; it is addressed by the customer who owns
// it. An empty cart is a valid cart — clearing an already empty cart
// succeeds, and checkout is the place that rejects emptiness.
//
// Example:
//
//	c, _ := cart.NewCart(customerID)
//	line, _ := cart.NewLine(menuItemID, 2, unitPrice)
//	if err := c.AddLine(line); err != nil {
//	    // second add of the same menu item lands here
//	}
//	total := c.Total() // exact decimal sum of line prices
type Cart struct {
	customerID kernel.UUID
	lines      []*Line

	isConstructed bool
}

// NewCart creates an empty cart for the given customer.
func NewCart(customerID kernel.UUID) (*Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		customerID:    customerID,
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart and its lines from persistence.
func RestoreCart(customerID kernel.UUID, lines []*Line) (*Cart, error) {
	cart, err := NewCart(customerID)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err = cart.AddLine(line); err != nil {
			return nil, err
		}
	}

	return cart, nil
}

// Validate ensures the Cart was created through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// CustomerID returns the identifier of the customer who owns the cart.
func (c *Cart) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the cart's lines. Order is not meaningful.
func (c *Cart) Lines() []*Line {
	return c.lines
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddLine adds a line to the cart. Returns an already-exists error if a line
// for the same menu item is present; callers translate that into a conflict.
func (c *Cart) AddLine(line *Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	if c.findLine(line.MenuItemID()) != nil {
		return errs.NewObjectAlreadyExistsError("cart line", line.MenuItemID().String())
	}

	c.lines = append(c.lines, line)
	return nil
}

// RemoveLine removes the line holding the given menu item. Returns a
// not-found error if no such line exists.
func (c *Cart) RemoveLine(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}

	for i, line := range c.lines {
		if line.MenuItemID().IsEqual(menuItemID) {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("cart line", menuItemID.String())
}

// Clear removes all lines. Clearing an empty cart is not an error.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total returns the exact decimal sum of the stored line prices. The result
// does not depend on the order lines were added in.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(line.Price())
	}
	return total
}

func (c *Cart) findLine(menuItemID kernel.UUID) *Line {
	for _, line := range c.lines {
		if line.MenuItemID().IsEqual(menuItemID) {
			return line
		}
	}
	return nil
}
