package menu

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrCategoryIsNotConstructed is returned when a Category instance was not
	// created through the NewCategory factory method.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")
)

// Category groups menu items ("Mains", "Desserts", ...). It is read-mostly
// reference data: only administrators create categories, and nothing in the
// ordering workflow ever mutates one.
type Category struct {
	id    kernel.UUID
	title string

	isConstructed bool
}

// NewCategory creates a Category with a validated identity and non-empty title.
func NewCategory(id kernel.UUID, title string) (*Category, error) {
	category := &Category{
		isConstructed: true,
	}

	if err := errors.Join(
		category.setID(id),
		category.setTitle(title),
	); err != nil {
		return nil, err
	}

	return category, nil
}

// RestoreCategory reconstructs a Category from persistence.
func RestoreCategory(id kernel.UUID, title string) (*Category, error) {
	return NewCategory(id, title)
}

// Validate ensures the Category was created through NewCategory.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Title returns the category's display title.
func (c *Category) Title() string {
	return c.title
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("category title")
	}
	c.title = title
	return nil
}
