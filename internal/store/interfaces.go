package store

import (
	"context"
	"time"

	"github.com/fayrashop/api/models"
)

// UserRepository is the data-access surface for user accounts. It is the
// system's user directory: the request pipeline consumes it through this
// narrow interface and never touches the storage engine directly.
type UserRepository interface {
	// Create persists a new user and returns the stored record with
	// server-assigned timestamps. Returns [ErrEmailAlreadyExists] when the
	// email is already taken.
	Create(ctx context.Context, user models.User) (models.User, error)

	// FindByEmail returns the user with the given email, role resolved.
	// Returns [ErrNotFound] when no such account exists.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// FindByID returns the user with the given id, role resolved.
	// Returns [ErrNotFound] when no such account exists.
	FindByID(ctx context.Context, id string) (models.User, error)

	// List returns one page of users matching q (search spans first name,
	// last name, and email) together with the total match count.
	List(ctx context.Context, q models.PageQuery) ([]models.User, int, error)

	// Update applies the non-nil fields of upd and returns the updated
	// record. Returns [ErrNotFound] when the user does not exist.
	Update(ctx context.Context, id string, upd models.UserUpdate) (models.User, error)

	// UpdatePassword replaces the stored credential hash.
	UpdatePassword(ctx context.Context, id, passwordHash string) error

	// RecordLogin stamps the user's last successful login time.
	RecordLogin(ctx context.Context, id string, at time.Time) error

	// Delete removes the account. Returns [ErrNotFound] when absent.
	Delete(ctx context.Context, id string) error
}

// RoleRepository is the data-access surface for roles.
type RoleRepository interface {
	// Create persists a new role. Returns [ErrRoleNameAlreadyExists] when
	// the name is already taken.
	Create(ctx context.Context, role models.Role) (models.Role, error)

	// FindByID returns the role with the given id or [ErrNotFound].
	FindByID(ctx context.Context, id string) (models.Role, error)

	// FindByName returns the role with the given name or [ErrNotFound].
	FindByName(ctx context.Context, name string) (models.Role, error)

	// List returns every role ordered by name.
	List(ctx context.Context) ([]models.Role, error)

	// Update applies the non-nil fields of upd and returns the updated
	// record. Returns [ErrNotFound] when the role does not exist and
	// [ErrRoleNameAlreadyExists] on a name collision.
	Update(ctx context.Context, id string, upd models.RoleUpdate) (models.Role, error)

	// Delete removes the role. Returns [ErrNotFound] when absent.
	Delete(ctx context.Context, id string) error
}

// OrderFilter narrows an order listing. Zero fields match everything.
type OrderFilter struct {
	// UserID restricts results to a single owner.
	UserID string

	// Status restricts results to a single lifecycle state.
	Status models.OrderStatus
}

// OrderRepository is the data-access surface for orders.
type OrderRepository interface {
	// Create persists a new order and returns the stored record.
	Create(ctx context.Context, order models.Order) (models.Order, error)

	// FindByID returns the order with the given id or [ErrNotFound].
	FindByID(ctx context.Context, id string) (models.Order, error)

	// List returns one page of orders matching the filter together with
	// the total match count.
	List(ctx context.Context, filter OrderFilter, q models.PageQuery) ([]models.Order, int, error)

	// UpdateStatus moves the order to the given lifecycle state and
	// returns the updated record. Returns [ErrNotFound] when absent.
	UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)
}
