package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table, with the
// assigned role resolved through a LEFT JOIN on "roles".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user record and returns the fully populated
// [models.User] with server-assigned timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	var roleID any
	if user.Role != nil {
		roleID = user.Role.ID
	}

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Phone, user.AvatarURL, user.Status, roleID)

	if err := row.Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		log.Err(err).Str("email", user.Email).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// FindByEmail looks up an account by email with its role resolved.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, findUserByEmail, email)
}

// FindByID looks up an account by id with its role resolved.
func (r *userRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, findUserByID, id)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		log.Err(err).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// List returns one page of users matching q and the total match count.
func (r *userRepository) List(ctx context.Context, q models.PageQuery) ([]models.User, int, error) {
	log := logger.FromContext(ctx)

	pageQuery, countQuery := buildListUsersQuery(q)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building sql query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Msg("error counting users")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	pageSQL, pageArgs, err := pageQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		log.Err(err).Msg("error listing users")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0, q.Limit)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, total, nil
}

// Update applies the non-nil fields of upd and returns the updated record.
func (r *userRepository) Update(ctx context.Context, id string, upd models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	builder, changed := buildUpdateUserQuery(id, upd)
	if !changed {
		return r.FindByID(ctx, id)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("error building sql query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error updating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return models.User{}, ErrNotFound
	}

	return r.FindByID(ctx, id)
}

// UpdatePassword replaces the stored credential hash.
func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserPassword, id, passwordHash)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error updating user password")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

// RecordLogin stamps the user's last successful login time.
func (r *userRepository) RecordLogin(ctx context.Context, id string, at time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, recordUserLogin, id, at)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error recording user login")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes the account.
func (r *userRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).Str("id", id).Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows so one scan helper serves
// both single-row lookups and listings.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser scans one user row (joined with its role) into a models.User.
// Role columns are nullable: users without a role produce a nil Role.
func scanUser(row rowScanner) (models.User, error) {
	var (
		user            models.User
		lastLogin       sql.NullTime
		roleID          sql.NullString
		roleName        sql.NullString
		roleDescription sql.NullString
		rolePermissions []byte
		roleCreatedAt   sql.NullTime
	)

	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.PasswordHash,
		&user.Phone, &user.AvatarURL, &user.Status, &lastLogin, &user.CreatedAt, &user.UpdatedAt,
		&roleID, &roleName, &roleDescription, &rolePermissions, &roleCreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if lastLogin.Valid {
		user.LastLoginAt = &lastLogin.Time
	}

	if roleID.Valid {
		role := models.Role{
			ID:          roleID.String,
			Name:        roleName.String,
			Description: roleDescription.String,
			CreatedAt:   roleCreatedAt.Time,
		}
		if len(rolePermissions) > 0 {
			if err := json.Unmarshal(rolePermissions, &role.Permissions); err != nil {
				return models.User{}, fmt.Errorf("error decoding role permissions: %w", err)
			}
		}
		user.Role = &role
	}

	return user, nil
}
