package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/models"
)

// roleRepository is the PostgreSQL-backed implementation of [RoleRepository].
// Permissions are stored as a JSONB array.
type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoleRepository constructs a [RoleRepository] backed by the provided
// database connection and logger.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *roleRepository) Create(ctx context.Context, role models.Role) (models.Role, error) {
	log := logger.FromContext(ctx)

	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	if role.Permissions == nil {
		role.Permissions = []string{}
	}

	permissions, err := json.Marshal(role.Permissions)
	if err != nil {
		return models.Role{}, fmt.Errorf("error encoding role permissions: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createRole, role.ID, role.Name, role.Description, permissions)
	if err := row.Scan(&role.CreatedAt); err != nil {
		log.Err(err).Str("name", role.Name).Msg("error creating role")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Role{}, ErrRoleNameAlreadyExists
		default:
			return models.Role{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return role, nil
}

func (r *roleRepository) FindByID(ctx context.Context, id string) (models.Role, error) {
	return r.findOne(ctx, findRoleByID, id)
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (models.Role, error) {
	return r.findOne(ctx, findRoleByName, name)
}

func (r *roleRepository) findOne(ctx context.Context, query string, arg any) (models.Role, error) {
	log := logger.FromContext(ctx)

	role, err := scanRole(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrNotFound
		}
		log.Err(err).Msg("error finding role")
		return models.Role{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return role, nil
}

func (r *roleRepository) List(ctx context.Context) ([]models.Role, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listRoles)
	if err != nil {
		log.Err(err).Msg("error listing roles")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var roles []models.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning role row: %w", err)
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return roles, nil
}

func (r *roleRepository) Update(ctx context.Context, id string, upd models.RoleUpdate) (models.Role, error) {
	log := logger.FromContext(ctx)

	var permissions []byte
	if upd.Permissions != nil {
		var err error
		permissions, err = json.Marshal(*upd.Permissions)
		if err != nil {
			return models.Role{}, fmt.Errorf("error encoding role permissions: %w", err)
		}
	}

	builder, changed := buildUpdateRoleQuery(id, upd, permissions)
	if !changed {
		return r.FindByID(ctx, id)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.Role{}, fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error updating role")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Role{}, ErrRoleNameAlreadyExists
		default:
			return models.Role{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.Role{}, ErrNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *roleRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteRole, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error deleting role")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

func scanRole(row rowScanner) (models.Role, error) {
	var (
		role        models.Role
		permissions []byte
	)

	if err := row.Scan(&role.ID, &role.Name, &role.Description, &permissions, &role.CreatedAt); err != nil {
		return models.Role{}, err
	}

	if len(permissions) > 0 {
		if err := json.Unmarshal(permissions, &role.Permissions); err != nil {
			return models.Role{}, fmt.Errorf("error decoding role permissions: %w", err)
		}
	}

	return role, nil
}
