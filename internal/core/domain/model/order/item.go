package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not
	// created through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a materialized order line: one Item is created per cart line at
// checkout and never mutated afterwards. Items only disappear when the order
// that owns them is deleted.
type Item struct {
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	price      kernel.Money

	isConstructed bool
}

// NewItem creates an order item, deriving the line price from the quantity
// and unit price.
func NewItem(menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	item.price = unitPrice.MulQuantity(quantity)
	return item, nil
}

// RestoreItem reconstructs an order item from persistence, keeping the stored
// line price.
func RestoreItem(menuItemID kernel.UUID, quantity int, unitPrice, price kernel.Money) (*Item, error) {
	item, err := NewItem(menuItemID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	if err = price.Validate(); err != nil {
		return nil, err
	}
	item.price = price
	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the identifier of the menu item this line holds.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the unit price carried over from the cart line.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Price returns the line price (quantity x unit price).
func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
