package models

import "time"

// Well-known role names seeded at first migration.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// PermissionWildcard on a role grants every permission.
const PermissionWildcard = "*"

// Role groups a named set of permissions. Role names participate in
// route-level authorization (set membership against a route's required
// roles); permissions are a separate, finer-grained mechanism consumed by
// domain logic. The two must not be conflated.
type Role struct {
	// ID is the unique identifier of the role (UUID).
	ID string `json:"id"`

	// Name is the unique role name ("admin", "manager", "user", ...).
	Name string `json:"name"`

	// Description is a human-readable summary of what the role grants.
	Description string `json:"description,omitempty"`

	// Permissions lists the permission strings granted by this role.
	// A single "*" entry grants everything.
	Permissions []string `json:"permissions"`

	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}

// HasPermission reports whether the role grants the given permission,
// honoring the "*" wildcard.
func (r Role) HasPermission(permission string) bool {
	for _, p := range r.Permissions {
		if p == PermissionWildcard || p == permission {
			return true
		}
	}
	return false
}

// RoleUpdate describes a partial update of a role. Nil fields are left
// unchanged.
type RoleUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
}
