package service

import (
	"github.com/fayrashop/api/internal/crypto"
	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/internal/store"
	"github.com/fayrashop/api/internal/token"
)

// Services aggregates the business-logic layer so the transport can be
// wired from a single value.
type Services struct {
	Auth   AuthService
	Users  UserService
	Roles  RoleService
	Orders OrderService
}

// NewServices constructs every service over the given repositories and
// primitives.
func NewServices(repos *store.Repositories, codec *token.Codec, hasher *crypto.PasswordHasher, recorder LoginRecorder, logger *logger.Logger) *Services {
	return &Services{
		Auth:   NewAuthService(repos.Users, repos.Roles, codec, hasher, recorder, logger),
		Users:  NewUserService(repos.Users, hasher, logger),
		Roles:  NewRoleService(repos.Roles, logger),
		Orders: NewOrderService(repos.Orders, logger),
	}
}
