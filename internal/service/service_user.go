package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/internal/crypto"
	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/internal/store"
	"github.com/fayrashop/api/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	users  store.UserRepository
	hasher *crypto.PasswordHasher
	logger *logger.Logger
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(users store.UserRepository, hasher *crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// List returns one page of users with pagination metadata.
func (s *userService) List(ctx context.Context, q models.PageQuery) ([]models.User, models.PageMeta, error) {
	log := logger.FromContext(ctx)

	q = q.Normalize()

	users, total, err := s.users.List(ctx, q)
	if err != nil {
		log.Err(err).Msg("error listing users")
		return nil, models.PageMeta{}, fmt.Errorf("error listing users: %w", err)
	}

	return users, models.NewPageMeta(q, total), nil
}

// Get returns a single user. A non-privileged principal may only read its
// own account.
func (s *userService) Get(ctx context.Context, principal models.Principal, id string) (models.User, error) {
	if !canAccessUser(principal, id) {
		return models.User{}, apperrors.NotAllowed
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, apperrors.UserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("user_id", id).Msg("error finding user")
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	return user, nil
}

// Update applies a partial profile update. Status changes go through
// SetStatus, never through here.
func (s *userService) Update(ctx context.Context, principal models.Principal, id string, upd models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if !canAccessUser(principal, id) {
		return models.User{}, apperrors.NotAllowed
	}

	upd.Status = nil
	upd.LastLogin = nil

	if upd.IsEmpty() {
		return models.User{}, apperrors.InvalidInput.WithMessage("No fields to update")
	}

	if upd.Email != nil {
		normalized := normalizeEmail(*upd.Email)
		if err := validateEmail(normalized); err != nil {
			return models.User{}, err
		}
		upd.Email = &normalized
	}

	user, err := s.users.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return models.User{}, apperrors.UserNotFound
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, apperrors.UserAlreadyExists
		}
		log.Err(err).Str("user_id", id).Msg("error updating user")
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return user, nil
}

// ChangePassword verifies the current password before storing a new hash.
// Only the account owner may change their password, regardless of role.
func (s *userService) ChangePassword(ctx context.Context, principal models.Principal, id, current, next string) error {
	log := logger.FromContext(ctx)

	if principal.ID != id {
		return apperrors.NotAllowed
	}

	if err := validatePassword(next); err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.UserNotFound
		}
		log.Err(err).Str("user_id", id).Msg("error finding user")
		return fmt.Errorf("error finding user: %w", err)
	}

	if err := s.hasher.Compare(current, user.PasswordHash); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			return apperrors.WrongCredentials
		}
		log.Err(err).Str("user_id", id).Msg("error comparing password hash")
		return fmt.Errorf("error comparing password hash: %w", err)
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, id, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.UserNotFound
		}
		log.Err(err).Str("user_id", id).Msg("error updating password")
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

// SetStatus activates or deactivates an account. Deactivated accounts keep
// their records; existing access tokens stay valid until expiry, but login
// and refresh are rejected.
func (s *userService) SetStatus(ctx context.Context, id string, active bool) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.Update(ctx, id, models.UserUpdate{Status: &active})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, apperrors.UserNotFound
		}
		log.Err(err).Str("user_id", id).Msg("error setting user status")
		return models.User{}, fmt.Errorf("error setting user status: %w", err)
	}

	return user, nil
}

// Delete removes an account.
func (s *userService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.UserNotFound
		}
		log.Err(err).Str("user_id", id).Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}

// canAccessUser reports whether the principal may read or modify the given
// account: the owner always can, admins and managers can reach any account.
func canAccessUser(principal models.Principal, id string) bool {
	if principal.ID == id {
		return true
	}
	return principal.RoleName == models.RoleAdmin || principal.RoleName == models.RoleManager
}
