package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/roles"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddRoleMemberCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddRoleMemberCommand(roles.Manager, "maria")

	userID := kernel.NewUUID()
	user, err := roles.NewUser(userID, "maria", "maria@example.com")
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	roleRepo := new(MockRoleRepository)
	uow := new(MockRoleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", mock.Anything, "maria").Return(user, nil).Once(),
		uow.On("RoleRepository").Return(roleRepo).Once(),
		roleRepo.On("AddMember", mock.Anything, roles.Manager, userID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRoleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddRoleMemberCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	userRepo.AssertExpectations(t)
	roleRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddRoleMemberCommandHandler_Handle_UnknownUsername(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAddRoleMemberCommand(roles.DeliveryCrew, "ghost")

	userRepo := new(MockUserRepository)
	uow := new(MockRoleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("GetByUsername", mock.Anything, "ghost").
			Return(nil, errs.NewObjectNotFoundError("user", "ghost")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRoleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddRoleMemberCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}
