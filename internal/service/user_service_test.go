package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fitbook/internal/errors"
	"fitbook/internal/model"
)

func TestUserService_Profile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.User{ID: 1, Email: "alice@example.com"}, nil)

		user, err := NewUserService(repo).Profile(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("missing", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewUserService(repo).Profile(context.Background(), 99)
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}

func TestUserService_UpdateRole(t *testing.T) {
	t.Run("successful promotion", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.User{ID: 1, Role: model.RoleMember}, nil)
		repo.On("UpdateRole", mock.Anything, uint(1), model.RoleTrainer).Return(nil)

		user, err := NewUserService(repo).UpdateRole(context.Background(), 1, model.RoleTrainer)
		require.NoError(t, err)
		assert.Equal(t, model.RoleTrainer, user.Role)
		repo.AssertExpectations(t)
	})

	t.Run("target missing", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewUserService(repo).UpdateRole(context.Background(), 99, model.RoleTrainer)
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
		repo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	})
}
