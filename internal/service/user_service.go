package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fitbook/internal/errors"
	"fitbook/internal/model"
	"fitbook/internal/repository"
)

// UserService exposes profile and role management operations.
type UserService interface {
	Profile(ctx context.Context, id uint) (*model.User, error)
	UpdateRole(ctx context.Context, id uint, role model.Role) (*model.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Profile returns the user record for an id.
func (s *userService) Profile(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateRole sets a user's role. Tokens issued before the update keep
// authorizing with the old role until their holder logs in again.
func (s *userService) UpdateRole(ctx context.Context, id uint, role model.Role) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	user.Role = role
	return user, nil
}
