package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/models"
)

func newTestRoleRepo(t *testing.T) (*roleRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	l := logger.Nop()
	repo := &roleRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func roleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "permissions", "created_at"})
}

func TestRoleRepository_Create(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO roles").
		WithArgs(sqlmock.AnyArg(), "manager", "Can read, write and update", []byte(`["read","write","update"]`)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

	role, err := repo.Create(context.Background(), models.Role{
		Name:        "manager",
		Description: "Can read, write and update",
		Permissions: []string{"read", "write", "update"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, role.ID)
	assert.Equal(t, now, role.CreatedAt)
}

func TestRoleRepository_Create_DuplicateName(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO roles").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(context.Background(), models.Role{Name: "admin"})
	assert.ErrorIs(t, err, ErrRoleNameAlreadyExists)
}

func TestRoleRepository_FindByName(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM roles WHERE name").
		WithArgs("user").
		WillReturnRows(roleRows().AddRow("r1", "user", "Read only", []byte(`["read"]`), time.Now()))

	role, err := repo.FindByName(context.Background(), "user")
	require.NoError(t, err)
	assert.Equal(t, []string{"read"}, role.Permissions)
}

func TestRoleRepository_FindByID_NotFound(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM roles WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoleRepository_List(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM roles ORDER BY name").
		WillReturnRows(roleRows().
			AddRow("r1", "admin", "", []byte(`["*"]`), time.Now()).
			AddRow("r2", "user", "", []byte(`["read"]`), time.Now()))

	roles, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, "admin", roles[0].Name)
}

func TestRoleRepository_Update_NotFound(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	name := "support"
	mock.ExpectExec("UPDATE roles SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.Update(context.Background(), "missing", models.RoleUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoleRepository_Delete(t *testing.T) {
	repo, mock, db := newTestRoleRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM roles").
		WithArgs("r1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "r1"))
}
