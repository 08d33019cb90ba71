package auth

import (
	"strings"

	"fitbook/internal/errors"
	"fitbook/internal/model"
)

// RoleSet is a fixed allow-list of roles for an operation.
type RoleSet []model.Role

// Roles builds a RoleSet from the given roles.
func Roles(roles ...model.Role) RoleSet {
	return RoleSet(roles)
}

// Predefined allow-lists for the protected route groups.
var (
	AdminOnly      = Roles(model.RoleAdmin)
	TrainerOrAdmin = Roles(model.RoleAdmin, model.RoleTrainer)
)

// Contains reports whether the set includes the role.
func (s RoleSet) Contains(role model.Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

func (s RoleSet) String() string {
	names := make([]string, len(s))
	for i, r := range s {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}

// Authorize succeeds iff the identity's role is in the allow-list.
// On failure it returns a ForbiddenError naming the allowed roles.
func Authorize(identity *Identity, allowed RoleSet) (*Identity, error) {
	if !allowed.Contains(identity.Role) {
		return nil, errors.NewForbiddenError(allowed.String())
	}
	return identity, nil
}
