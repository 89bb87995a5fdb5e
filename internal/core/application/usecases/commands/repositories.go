// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each command depends only on the narrow slice of repositories it
// actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// RoleRepoFactory provides access to the role repository within a transaction.
	RoleRepoFactory interface {
		RoleRepository() ports.RoleRepository
	}

	// CartUoW manages transactions for cart mutations. Adding a line also
	// reads the catalog to snapshot the unit price, so the menu item
	// repository rides along.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MenuItemRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the checkout transaction: cart read, order+item
	// creation and cart deletion are a single all-or-nothing unit.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order-only mutations
	// (status toggle, deletion).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignUoW manages crew assignment: the order and the crew user must
	// both exist before the assignment is persisted.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// MenuUoW manages catalog mutations (categories and menu items).
	MenuUoW interface {
		TxManager
		MenuItemRepoFactory
		CategoryRepoFactory
	}

	// MenuUoWFactory creates new catalog unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}

	// RoleUoW manages role membership mutations. Additions resolve the user
	// by username first, so the user repository rides along.
	RoleUoW interface {
		TxManager
		RoleRepoFactory
		UserRepoFactory
	}

	// RoleUoWFactory creates new role unit of work instances.
	RoleUoWFactory interface {
		Create() RoleUoW
	}
)
