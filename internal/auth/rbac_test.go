package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitbook/internal/errors"
	"fitbook/internal/model"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		role    model.Role
		allowed RoleSet
		wantErr bool
	}{
		{"admin on admin-only", model.RoleAdmin, AdminOnly, false},
		{"trainer on admin-only", model.RoleTrainer, AdminOnly, true},
		{"member on admin-only", model.RoleMember, AdminOnly, true},
		{"admin on trainer-or-admin", model.RoleAdmin, TrainerOrAdmin, false},
		{"trainer on trainer-or-admin", model.RoleTrainer, TrainerOrAdmin, false},
		{"member on trainer-or-admin", model.RoleMember, TrainerOrAdmin, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := &Identity{ID: 1, Email: "x@example.com", Role: tt.role}
			got, err := Authorize(identity, tt.allowed)
			if tt.wantErr {
				var forbidden *errors.ForbiddenError
				require.ErrorAs(t, err, &forbidden)
				assert.Contains(t, forbidden.Error(), tt.allowed.String())
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Same(t, identity, got)
			}
		})
	}
}

// Widening an allow-list never flips an allowed identity to denied.
func TestAuthorize_MonotonicUnderWidening(t *testing.T) {
	roles := []model.Role{model.RoleAdmin, model.RoleTrainer, model.RoleMember}

	for _, held := range roles {
		identity := &Identity{ID: 1, Role: held}
		for _, base := range []RoleSet{AdminOnly, TrainerOrAdmin, Roles(model.RoleMember)} {
			_, baseErr := Authorize(identity, base)
			for _, extra := range roles {
				widened := append(Roles(base...), extra)
				_, widenedErr := Authorize(identity, widened)
				if baseErr == nil {
					assert.NoError(t, widenedErr,
						"role %s allowed by %v but denied by wider %v", held, base, widened)
				}
			}
		}
	}
}

func TestRoleSet_String(t *testing.T) {
	assert.Equal(t, "admin, trainer", TrainerOrAdmin.String())
	assert.Equal(t, "admin", AdminOnly.String())
}
