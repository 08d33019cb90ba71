package model

import (
	"encoding/json"
	"fmt"
)

// Role is the closed set of access levels a user can hold.
type Role string

const (
	// RoleAdmin may manage user roles and everything below.
	RoleAdmin Role = "admin"
	// RoleTrainer may create classes and access trainer data.
	RoleTrainer Role = "trainer"
	// RoleMember is the default role assigned on registration.
	RoleMember Role = "member"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTrainer, RoleMember:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// UnmarshalJSON rejects unknown roles at the decoding boundary so that
// no handler or service ever sees a role outside the enum.
func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	role := Role(s)
	if !role.Valid() {
		return fmt.Errorf("invalid role %q", s)
	}
	*r = role
	return nil
}
