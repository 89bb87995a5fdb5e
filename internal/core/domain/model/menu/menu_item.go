package menu

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
	// created through the NewMenuItem factory method.
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")
)

// MenuItem is a dish on the menu. The ordering workflow reads it for pricing
// and titles; the only mutation it supports after creation is flipping the
// featured flag (admin edits replace the row wholesale).
//
// Invariants:
//   - valid unique identifier and category reference
//   - non-empty title
//   - non-negative price
type MenuItem struct {
	id         kernel.UUID
	title      string
	price      kernel.Money
	featured   bool
	categoryID kernel.UUID

	isConstructed bool
}

// NewMenuItem creates a MenuItem with validated identity, title, price and
// category reference. New items start unfeatured.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("9.00")
//	item, err := menu.NewMenuItem(kernel.NewUUID(), "Bruschetta", price, categoryID)
//	if err != nil {
//	    // handle validation error
//	}
func NewMenuItem(id kernel.UUID, title string, price kernel.Money, categoryID kernel.UUID) (*MenuItem, error) {
	item := &MenuItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setTitle(title),
		item.setPrice(price),
		item.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreMenuItem reconstructs a MenuItem from persistence, including its
// featured flag.
func RestoreMenuItem(
	id kernel.UUID, title string, price kernel.Money, featured bool, categoryID kernel.UUID,
) (*MenuItem, error) {
	item, err := NewMenuItem(id, title, price, categoryID)
	if err != nil {
		return nil, err
	}
	item.featured = featured
	return item, nil
}

// Validate ensures the MenuItem was created through NewMenuItem.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item's unique identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// Title returns the menu item's display title.
func (m *MenuItem) Title() string {
	return m.title
}

// Price returns the menu item's current unit price. Cart lines snapshot this
// value at add-to-cart time; later price edits do not affect existing carts.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Featured reports whether the item is currently featured.
func (m *MenuItem) Featured() bool {
	return m.featured
}

// CategoryID returns the identifier of the category the item belongs to.
func (m *MenuItem) CategoryID() kernel.UUID {
	return m.categoryID
}

// ToggleFeatured flips the featured flag. Toggling twice restores the
// original value.
func (m *MenuItem) ToggleFeatured() {
	m.featured = !m.featured
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("menu item title")
	}
	m.title = title
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("category reference", err)
	}
	m.categoryID = categoryID
	return nil
}
