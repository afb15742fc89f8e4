package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/fayrashop/api/models"
)

// Static queries. Dynamic queries (lists, partial updates) are built with
// squirrel below.
const (
	userColumns = `u.id, u.first_name, u.last_name, u.email, u.password_hash, u.phone, u.avatar_url,
		u.status, u.last_login_at, u.created_at, u.updated_at,
		r.id, r.name, r.description, r.permissions, r.created_at`

	userJoin = ` FROM users u LEFT JOIN roles r ON r.id = u.role_id`

	createUser = `INSERT INTO users (id, first_name, last_name, email, password_hash, phone, avatar_url, status, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at;`

	findUserByEmail = `SELECT ` + userColumns + userJoin + ` WHERE u.email = $1;`
	findUserByID    = `SELECT ` + userColumns + userJoin + ` WHERE u.id = $1;`

	updateUserPassword = `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1;`
	recordUserLogin    = `UPDATE users SET last_login_at = $2 WHERE id = $1;`
	deleteUser         = `DELETE FROM users WHERE id = $1;`

	roleColumns = `id, name, description, permissions, created_at`

	createRole = `INSERT INTO roles (id, name, description, permissions)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at;`

	findRoleByID   = `SELECT ` + roleColumns + ` FROM roles WHERE id = $1;`
	findRoleByName = `SELECT ` + roleColumns + ` FROM roles WHERE name = $1;`
	listRoles      = `SELECT ` + roleColumns + ` FROM roles ORDER BY name;`
	deleteRole     = `DELETE FROM roles WHERE id = $1;`

	orderColumns = `id, user_id, items, total, status, created_at, updated_at`

	createOrder = `INSERT INTO orders (id, user_id, items, total, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at;`

	findOrderByID = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1;`

	updateOrderStatus = `UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + orderColumns + `;`
)

// psql builds queries with Postgres-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userSortColumns whitelists the sortable columns of a user listing;
// anything else falls back to created_at.
var userSortColumns = map[string]string{
	"firstName": "u.first_name",
	"lastName":  "u.last_name",
	"email":     "u.email",
	"createdAt": "u.created_at",
}

// orderSortColumns whitelists the sortable columns of an order listing.
var orderSortColumns = map[string]string{
	"total":     "total",
	"status":    "status",
	"createdAt": "created_at",
}

func sortColumn(allowed map[string]string, requested, fallback string) string {
	if col, ok := allowed[requested]; ok {
		return col
	}
	return fallback
}

// buildListUsersQuery builds the paged SELECT and the matching COUNT for a
// user listing. Search spans first name, last name, and email.
func buildListUsersQuery(q models.PageQuery) (sq.SelectBuilder, sq.SelectBuilder) {
	base := psql.Select().From("users u").LeftJoin("roles r ON r.id = u.role_id")
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		base = base.Where(sq.Or{
			sq.ILike{"u.first_name": pattern},
			sq.ILike{"u.last_name": pattern},
			sq.ILike{"u.email": pattern},
		})
	}

	page := base.Columns(userColumns).
		OrderBy(sortColumn(userSortColumns, q.SortBy, "u.created_at") + " " + q.SortOrder).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset()))

	count := base.Columns("COUNT(*)")

	return page, count
}

// buildUpdateUserQuery builds a partial UPDATE from the non-nil fields of
// upd. Returns false when the update carries no changes.
func buildUpdateUserQuery(id string, upd models.UserUpdate) (sq.UpdateBuilder, bool) {
	builder := psql.Update("users").Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})

	changed := false
	if upd.FirstName != nil {
		builder = builder.Set("first_name", *upd.FirstName)
		changed = true
	}
	if upd.LastName != nil {
		builder = builder.Set("last_name", *upd.LastName)
		changed = true
	}
	if upd.Email != nil {
		builder = builder.Set("email", *upd.Email)
		changed = true
	}
	if upd.Phone != nil {
		builder = builder.Set("phone", *upd.Phone)
		changed = true
	}
	if upd.AvatarURL != nil {
		builder = builder.Set("avatar_url", *upd.AvatarURL)
		changed = true
	}
	if upd.Status != nil {
		builder = builder.Set("status", *upd.Status)
		changed = true
	}
	if upd.LastLogin != nil {
		builder = builder.Set("last_login_at", *upd.LastLogin)
		changed = true
	}

	return builder, changed
}

// buildUpdateRoleQuery builds a partial UPDATE from the non-nil fields of
// upd. Permissions are passed pre-serialized as JSON.
func buildUpdateRoleQuery(id string, upd models.RoleUpdate, permissionsJSON []byte) (sq.UpdateBuilder, bool) {
	builder := psql.Update("roles").Where(sq.Eq{"id": id})

	changed := false
	if upd.Name != nil {
		builder = builder.Set("name", *upd.Name)
		changed = true
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
		changed = true
	}
	if upd.Permissions != nil {
		builder = builder.Set("permissions", permissionsJSON)
		changed = true
	}

	return builder, changed
}

// buildListOrdersQuery builds the paged SELECT and the matching COUNT for
// an order listing.
func buildListOrdersQuery(filter OrderFilter, q models.PageQuery) (sq.SelectBuilder, sq.SelectBuilder) {
	base := psql.Select().From("orders")
	if filter.UserID != "" {
		base = base.Where(sq.Eq{"user_id": filter.UserID})
	}
	if filter.Status != "" {
		base = base.Where(sq.Eq{"status": string(filter.Status)})
	}

	page := base.Columns(orderColumns).
		OrderBy(sortColumn(orderSortColumns, q.SortBy, "created_at") + " " + q.SortOrder).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset()))

	count := base.Columns("COUNT(*)")

	return page, count
}
