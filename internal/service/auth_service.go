package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fitbook/internal/auth"
	"fitbook/internal/errors"
	"fitbook/internal/metrics"
	"fitbook/internal/model"
	"fitbook/internal/repository"
)

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users    repository.UserRepository
	tokens   *auth.JWTService
	recorder metrics.Recorder
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.JWTService, recorder metrics.Recorder) AuthService {
	return &authService{
		users:    users,
		tokens:   tokens,
		recorder: recorder,
	}
}

// Register creates a new user with a hashed password. The role is
// always member on public registration, whatever the caller sent.
func (s *authService) Register(ctx context.Context, email, password, name string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
		Role:         model.RoleMember,
		Active:       true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.recorder.RecordRegistration()
	return user, nil
}

// Login verifies credentials and issues an access token carrying the
// user's current role. Unknown email, wrong password and inactive
// account all fail with the same ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.recorder.RecordLoginFailure()
		return "", nil, errors.ErrInvalidCredentials
	}

	if !user.Active || !auth.CheckPassword(password, user.PasswordHash) {
		s.recorder.RecordLoginFailure()
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, []model.Role{user.Role})
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}
