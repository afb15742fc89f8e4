// Package service holds the business logic of the API: account lifecycle,
// token issuance, role administration, and order management. Services
// consume repositories through their interfaces and surface failures as
// catalog errors from [apperrors], which the transport layer translates
// onto the wire.
package service

import (
	"context"

	"github.com/fayrashop/api/models"
)

// RegisterInput carries a registration request.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// AuthResult is what a successful register or login produces: the account's
// public representation plus a fresh token pair.
type AuthResult struct {
	User   models.PublicUser `json:"user"`
	Tokens models.TokenPair  `json:"tokens"`
}

// AuthService handles registration, credential verification, and the token
// lifecycle.
type AuthService interface {
	// Register creates a new active account with the default role and
	// returns it together with a fresh token pair.
	Register(ctx context.Context, in RegisterInput) (AuthResult, error)

	// Login verifies the credentials and returns the account with a fresh
	// token pair. Unknown email and wrong password are indistinguishable to
	// the caller.
	Login(ctx context.Context, email, password string) (AuthResult, error)

	// Refresh exchanges a valid refresh token for a fresh pair, re-resolving
	// the account's current role. Every verification failure surfaces as
	// the same generic invalid-token error.
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
}

// UserService manages user accounts.
type UserService interface {
	// List returns one page of users with pagination metadata.
	List(ctx context.Context, q models.PageQuery) ([]models.User, models.PageMeta, error)

	// Get returns a single user. Non-privileged callers may only fetch
	// their own account.
	Get(ctx context.Context, principal models.Principal, id string) (models.User, error)

	// Update applies a partial profile update. Non-privileged callers may
	// only update their own account.
	Update(ctx context.Context, principal models.Principal, id string, upd models.UserUpdate) (models.User, error)

	// ChangePassword verifies the current password and replaces the stored
	// hash. Callers may only change their own password.
	ChangePassword(ctx context.Context, principal models.Principal, id, current, next string) error

	// SetStatus activates or deactivates an account.
	SetStatus(ctx context.Context, id string, active bool) (models.User, error)

	// Delete removes an account.
	Delete(ctx context.Context, id string) error
}

// RoleService manages the role catalog.
type RoleService interface {
	Create(ctx context.Context, role models.Role) (models.Role, error)
	Get(ctx context.Context, id string) (models.Role, error)
	List(ctx context.Context) ([]models.Role, error)
	Update(ctx context.Context, id string, upd models.RoleUpdate) (models.Role, error)
	Delete(ctx context.Context, id string) error
}

// CreateOrderInput carries an order creation request. The total is always
// computed server-side from the items.
type CreateOrderInput struct {
	Items []models.OrderItem `json:"items"`
}

// OrderService manages the order lifecycle.
type OrderService interface {
	// Create places a new order owned by the principal.
	Create(ctx context.Context, principal models.Principal, in CreateOrderInput) (models.Order, error)

	// Get returns a single order. Non-privileged callers may only fetch
	// their own orders.
	Get(ctx context.Context, principal models.Principal, id string) (models.Order, error)

	// List returns one page of orders. Non-privileged callers see only
	// their own orders; privileged callers see everything, optionally
	// narrowed by status.
	List(ctx context.Context, principal models.Principal, status models.OrderStatus, q models.PageQuery) ([]models.Order, models.PageMeta, error)

	// UpdateStatus advances an order along its lifecycle. Only forward
	// transitions are allowed.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)

	// Cancel cancels an order that has not shipped yet. Non-privileged
	// callers may only cancel their own orders.
	Cancel(ctx context.Context, principal models.Principal, id string) (models.Order, error)
}

// LoginRecorder receives successful-login notifications. Implementations
// must not block: login latency never depends on the recorder.
type LoginRecorder interface {
	Record(userID string)
}
