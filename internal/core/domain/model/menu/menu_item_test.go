package menu_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPrice(t *testing.T) kernel.Money {
	t.Helper()
	price, err := kernel.NewMoneyFromString("9.00")
	require.NoError(t, err)
	return price
}

func TestNewMenuItem(t *testing.T) {
	validID := kernel.NewUUID()
	validCategoryID := kernel.NewUUID()

	t.Run("should create valid item with all valid parameters", func(t *testing.T) {
		item, err := menu.NewMenuItem(validID, "Bruschetta", validPrice(t), validCategoryID)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.Equal(t, "Bruschetta", item.Title())
		assert.Equal(t, "9.00", item.Price().String())
		assert.False(t, item.Featured())
		assert.True(t, item.CategoryID().IsEqual(validCategoryID))
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		item, err := menu.NewMenuItem(invalidID, "Bruschetta", validPrice(t), validCategoryID)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with empty title", func(t *testing.T) {
		item, err := menu.NewMenuItem(validID, "", validPrice(t), validCategoryID)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "menu item title")
	})

	t.Run("should fail with unconstructed price", func(t *testing.T) {
		var price kernel.Money

		item, err := menu.NewMenuItem(validID, "Bruschetta", price, validCategoryID)

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with invalid category reference", func(t *testing.T) {
		var invalidCategory kernel.UUID

		item, err := menu.NewMenuItem(validID, "Bruschetta", validPrice(t), invalidCategory)

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "category reference")
	})
}

func TestMenuItem_ToggleFeatured(t *testing.T) {
	item, err := menu.NewMenuItem(kernel.NewUUID(), "Bruschetta", validPrice(t), kernel.NewUUID())
	require.NoError(t, err)

	item.ToggleFeatured()
	assert.True(t, item.Featured())

	item.ToggleFeatured()
	assert.False(t, item.Featured())
}

func TestRestoreMenuItem(t *testing.T) {
	id := kernel.NewUUID()
	categoryID := kernel.NewUUID()

	item, err := menu.RestoreMenuItem(id, "Lemon Cake", validPrice(t), true, categoryID)

	require.NoError(t, err)
	assert.True(t, item.Featured())
}

func TestMenuItem_Validate(t *testing.T) {
	var item *menu.MenuItem

	require.ErrorIs(t, item.Validate(), menu.ErrMenuItemIsNotConstructed)
}

func TestNewCategory(t *testing.T) {
	t.Run("valid category", func(t *testing.T) {
		id := kernel.NewUUID()

		category, err := menu.NewCategory(id, "Desserts")

		require.NoError(t, err)
		require.NoError(t, category.Validate())
		assert.True(t, category.ID().IsEqual(id))
		assert.Equal(t, "Desserts", category.Title())
	})

	t.Run("empty title fails", func(t *testing.T) {
		category, err := menu.NewCategory(kernel.NewUUID(), "")

		require.Error(t, err)
		assert.Nil(t, category)
	})
}
