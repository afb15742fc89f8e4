package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/models"
)

func newTestOrderRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	l := logger.Nop()
	repo := &orderRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func orderRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "items", "total", "status", "created_at", "updated_at"})
}

func TestOrderRepository_Create(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(sqlmock.AnyArg(), "u1", []byte(`[{"productId":"p1","name":"Mug","price":9.5,"quantity":2}]`), 19.0, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	order, err := repo.Create(context.Background(), models.Order{
		UserID: "u1",
		Items:  []models.OrderItem{{ProductID: "p1", Name: "Mug", Price: 9.5, Quantity: 2}},
		Total:  19.0,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderPending, order.Status, "status defaults to pending")
}

func TestOrderRepository_FindByID(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").
		WithArgs("o1").
		WillReturnRows(orderRows().AddRow(
			"o1", "u1", []byte(`[{"productId":"p1","name":"Mug","price":9.5,"quantity":2}]`),
			19.0, "processing", now, now))

	order, err := repo.FindByID(context.Background(), "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderProcessing, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderRepository_List_FilterByUser(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT COUNT(.+) FROM orders").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM orders").
		WillReturnRows(orderRows().AddRow("o1", "u1", []byte(`[]`), 0.0, "pending", now, now))

	orders, total, err := repo.List(context.Background(),
		OrderFilter{UserID: "u1"},
		models.PageQuery{Page: 1, Limit: 10, SortOrder: "DESC"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, "u1", orders[0].UserID)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs("o1", "shipped").
		WillReturnRows(orderRows().AddRow("o1", "u1", []byte(`[]`), 19.0, "shipped", now, now))

	order, err := repo.UpdateStatus(context.Background(), "o1", models.OrderShipped)
	require.NoError(t, err)
	assert.Equal(t, models.OrderShipped, order.Status)
}

func TestOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, mock, db := newTestOrderRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs("missing", "cancelled").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateStatus(context.Background(), "missing", models.OrderCancelled)
	assert.ErrorIs(t, err, ErrNotFound)
}
