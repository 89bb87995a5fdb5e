package roles_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/roles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Run("known roles", func(t *testing.T) {
		manager, err := roles.ParseRole("manager")
		require.NoError(t, err)
		assert.Equal(t, roles.Manager, manager)

		crew, err := roles.ParseRole("delivery-crew")
		require.NoError(t, err)
		assert.Equal(t, roles.DeliveryCrew, crew)
	})

	t.Run("unknown role fails", func(t *testing.T) {
		_, err := roles.ParseRole("sommelier")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sommelier")
	})
}

func TestRole_Validate(t *testing.T) {
	require.NoError(t, roles.Manager.Validate())
	require.NoError(t, roles.DeliveryCrew.Validate())
	require.Error(t, roles.UnknownRole.Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "manager", roles.Manager.String())
	assert.Equal(t, "delivery-crew", roles.DeliveryCrew.String())
	assert.Equal(t, "unknown", roles.UnknownRole.String())
}

func TestNewUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		id := kernel.NewUUID()

		user, err := roles.NewUser(id, "maria", "maria@example.com")

		require.NoError(t, err)
		require.NoError(t, user.Validate())
		assert.True(t, user.ID().IsEqual(id))
		assert.Equal(t, "maria", user.Username())
		assert.Equal(t, "maria@example.com", user.Email())
	})

	t.Run("empty email is allowed", func(t *testing.T) {
		user, err := roles.NewUser(kernel.NewUUID(), "maria", "")

		require.NoError(t, err)
		assert.Empty(t, user.Email())
	})

	t.Run("empty username fails", func(t *testing.T) {
		user, err := roles.NewUser(kernel.NewUUID(), "", "maria@example.com")

		require.Error(t, err)
		assert.Nil(t, user)
	})
}
