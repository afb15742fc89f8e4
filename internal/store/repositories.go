package store

import "github.com/fayrashop/api/internal/logger"

// Repositories aggregates every repository so the service layer can be
// wired from a single value.
type Repositories struct {
	Users  UserRepository
	Roles  RoleRepository
	Orders OrderRepository
}

// NewRepositories constructs all repositories over the given connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users:  NewUserRepository(db, logger),
		Roles:  NewRoleRepository(db, logger),
		Orders: NewOrderRepository(db, logger),
	}
}
