package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user
	// fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrRoleNameAlreadyExists is returned when an attempt to create or
	// rename a role collides with an existing role name.
	ErrRoleNameAlreadyExists = errors.New("role name already exists")

	// ErrNotFound is returned when a query expected to match exactly one
	// record produces an empty result set, or when an UPDATE/DELETE affects
	// zero rows.
	ErrNotFound = errors.New("record not found")
)
