package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/roles"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddRoleMemberCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAddRoleMemberCommand(roles.Manager, "maria")
	require.NoError(t, err)
	assert.Equal(t, roles.Manager, cmd.Role())
	assert.Equal(t, "maria", cmd.Username())
}

func TestNewAddRoleMemberCommand_EmptyUsername(t *testing.T) {
	_, err := commands.NewAddRoleMemberCommand(roles.DeliveryCrew, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUsernameIsRequired)
}

func TestNewAddRoleMemberCommand_UnknownRole(t *testing.T) {
	_, err := commands.NewAddRoleMemberCommand(roles.UnknownRole, "maria")
	require.Error(t, err)
}
