package cart

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine factory method.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is a single pending entry in a customer's cart: a menu item, a
// positive quantity, the unit price snapshotted from the catalog at
// add-to-cart time, and the derived line price.
//
// The line price is computed exactly once, as quantity x unit price in exact
// decimal arithmetic, and never recomputed afterwards.
type Line struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	price      kernel.Money

	isConstructed bool
}

// NewLine creates a cart line, deriving the line price from the quantity and
// unit price. Quantity must be positive; the unit price must be a constructed
// Money value.
func NewLine(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (*Line, error) {
	line := &Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setMenuItemID(menuItemID),
		line.setQuantity(quantity),
		line.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	line.price = unitPrice.MulQuantity(quantity)
	return line, nil
}

// RestoreLine reconstructs a cart line from persistence, keeping the stored
// line price rather than recomputing it.
func RestoreLine(menuItemID kernel.UUID, quantity int, unitPrice, price kernel.Money) (*Line, error) {
	line, err := NewLine(menuItemID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	if err = price.Validate(); err != nil {
		return nil, err
	}
	line.price = price
	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// MenuItemID returns the identifier of the menu item this line holds.
func (l *Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Quantity returns the number of units in this line.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per unit snapshotted when the line was added.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Price returns the line price (quantity x unit price).
func (l *Line) Price() kernel.Money {
	return l.price
}

func (l *Line) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	l.menuItemID = menuItemID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}
