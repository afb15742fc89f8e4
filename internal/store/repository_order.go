package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]. Order items are stored as a JSONB document on the
// order row; there is no separate line-item table.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = models.OrderPending
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return models.Order{}, fmt.Errorf("error encoding order items: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createOrder,
		order.ID, order.UserID, items, order.Total, string(order.Status))

	if err := row.Scan(&order.CreatedAt, &order.UpdatedAt); err != nil {
		log.Err(err).Str("user_id", order.UserID).Msg("error creating order")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return order, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (models.Order, error) {
	log := logger.FromContext(ctx)

	order, err := scanOrder(r.db.QueryRowContext(ctx, findOrderByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrNotFound
		}
		log.Err(err).Str("id", id).Msg("error finding order")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter, q models.PageQuery) ([]models.Order, int, error) {
	log := logger.FromContext(ctx)

	pageQuery, countQuery := buildListOrdersQuery(filter, q)

	countSQL, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building sql query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Msg("error counting orders")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	pageSQL, pageArgs, err := pageQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, pageSQL, pageArgs...)
	if err != nil {
		log.Err(err).Msg("error listing orders")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0, q.Limit)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return orders, total, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	log := logger.FromContext(ctx)

	order, err := scanOrder(r.db.QueryRowContext(ctx, updateOrderStatus, id, string(status)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Order{}, ErrNotFound
		}
		log.Err(err).Str("id", id).Str("status", string(status)).Msg("error updating order status")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return order, nil
}

func scanOrder(row rowScanner) (models.Order, error) {
	var (
		order models.Order
		items []byte
	)

	if err := row.Scan(&order.ID, &order.UserID, &items, &order.Total, &order.Status,
		&order.CreatedAt, &order.UpdatedAt); err != nil {
		return models.Order{}, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return models.Order{}, fmt.Errorf("error decoding order items: %w", err)
		}
	}

	return order, nil
}
