package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/internal/store"
	"github.com/fayrashop/api/models"
)

// roleService is the concrete implementation of RoleService. Route-level
// authorization restricts the whole surface to admins, so no per-call
// ownership checks are needed here.
type roleService struct {
	roles  store.RoleRepository
	logger *logger.Logger
}

// NewRoleService constructs a RoleService over the given repository.
func NewRoleService(roles store.RoleRepository, logger *logger.Logger) RoleService {
	return &roleService{
		roles:  roles,
		logger: logger,
	}
}

func (s *roleService) Create(ctx context.Context, role models.Role) (models.Role, error) {
	log := logger.FromContext(ctx)

	role.Name = strings.TrimSpace(role.Name)
	if role.Name == "" {
		return models.Role{}, apperrors.MissingField.WithMessage("Role name is required")
	}

	created, err := s.roles.Create(ctx, role)
	if err != nil {
		if errors.Is(err, store.ErrRoleNameAlreadyExists) {
			return models.Role{}, apperrors.RoleAlreadyExists
		}
		log.Err(err).Str("name", role.Name).Msg("error creating role")
		return models.Role{}, fmt.Errorf("error creating role: %w", err)
	}

	return created, nil
}

func (s *roleService) Get(ctx context.Context, id string) (models.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Role{}, apperrors.RoleNotFound
		}
		logger.FromContext(ctx).Err(err).Str("role_id", id).Msg("error finding role")
		return models.Role{}, fmt.Errorf("error finding role: %w", err)
	}

	return role, nil
}

func (s *roleService) List(ctx context.Context) ([]models.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error listing roles")
		return nil, fmt.Errorf("error listing roles: %w", err)
	}

	return roles, nil
}

func (s *roleService) Update(ctx context.Context, id string, upd models.RoleUpdate) (models.Role, error) {
	log := logger.FromContext(ctx)

	if upd.Name != nil {
		trimmed := strings.TrimSpace(*upd.Name)
		if trimmed == "" {
			return models.Role{}, apperrors.MissingField.WithMessage("Role name is required")
		}
		upd.Name = &trimmed
	}

	role, err := s.roles.Update(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return models.Role{}, apperrors.RoleNotFound
		case errors.Is(err, store.ErrRoleNameAlreadyExists):
			return models.Role{}, apperrors.RoleAlreadyExists
		}
		log.Err(err).Str("role_id", id).Msg("error updating role")
		return models.Role{}, fmt.Errorf("error updating role: %w", err)
	}

	return role, nil
}

func (s *roleService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.roles.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperrors.RoleNotFound
		}
		log.Err(err).Str("role_id", id).Msg("error deleting role")
		return fmt.Errorf("error deleting role: %w", err)
	}

	return nil
}
