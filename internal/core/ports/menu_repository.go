package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *menu.MenuItem) error

	// Update persists changes to an existing menu item (featured flag,
	// admin edits).
	Update(ctx context.Context, aggregate *menu.MenuItem) error

	// Get retrieves a menu item by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)
}

// CategoryRepository defines the persistence contract for menu categories.
type CategoryRepository interface {
	// Add persists a new category.
	Add(ctx context.Context, aggregate *menu.Category) error

	// Get retrieves a category by unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*menu.Category, error)
}
