package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand_ValidInput(t *testing.T) {
	customerID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewAddCartItemCommand(customerID, menuItemID, 2)
	require.NoError(t, err)
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, menuItemID, cmd.MenuItemID())
	assert.Equal(t, 2, cmd.Quantity())
}

func TestNewAddCartItemCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewAddCartItemCommand(kernel.UUID{}, kernel.NewUUID(), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewAddCartItemCommand_ZeroQuantity(t *testing.T) {
	_, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestNewAddCartItemCommand_NegativeQuantity(t *testing.T) {
	_, err := commands.NewAddCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), -1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}
