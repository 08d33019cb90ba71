package auth

import (
	"context"

	"fitbook/internal/errors"
	"fitbook/internal/model"
	"fitbook/internal/repository"
)

// Identity is the authenticated caller recovered from a bearer token.
// Role is the role embedded in the token at issuance time, not the
// current value in the user store; a role change takes effect only
// once the holder logs in again.
type Identity struct {
	ID    uint
	Email string
	Name  string
	Role  model.Role
}

// Authenticator turns a presented bearer token into an Identity.
type Authenticator struct {
	tokens *JWTService
	users  repository.UserRepository
}

// NewAuthenticator creates an authenticator backed by the user store.
func NewAuthenticator(tokens *JWTService, users repository.UserRepository) *Authenticator {
	return &Authenticator{tokens: tokens, users: users}
}

// Authenticate verifies the token's signature and expiry, requires a
// non-empty roles claim and resolves the subject against the user
// store. Every failure returns the same errors.ErrInvalidToken so a
// caller cannot distinguish why authentication failed.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Identity, error) {
	claims, err := a.tokens.Validate(token)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	if claims.Subject == "" || len(claims.Roles) == 0 {
		return nil, errors.ErrInvalidToken
	}

	user, err := a.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	return &Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  claims.Roles[0],
	}, nil
}
