package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/internal/store"
	"github.com/fayrashop/api/models"
)

func orderItems() []models.OrderItem {
	return []models.OrderItem{
		{ProductID: "p1", Name: "Mug", Price: 9.5, Quantity: 2},
		{ProductID: "p2", Name: "Shirt", Price: 20, Quantity: 1},
	}
}

func TestOrderService_Create_ComputesTotal(t *testing.T) {
	var created models.Order
	orders := &orderRepoMock{
		createFn: func(_ context.Context, order models.Order) (models.Order, error) {
			order.ID = "o1"
			created = order
			return order, nil
		},
	}
	svc := NewOrderService(orders, logger.Nop())

	order, err := svc.Create(context.Background(), selfPrincipal("u1"), CreateOrderInput{Items: orderItems()})
	require.NoError(t, err)

	assert.Equal(t, "u1", created.UserID, "order belongs to the caller")
	assert.Equal(t, models.OrderPending, created.Status)
	assert.InDelta(t, 39.0, created.Total, 0.001, "total is computed from items, never trusted")
	assert.Equal(t, "o1", order.ID)
}

func TestOrderService_Create_Validation(t *testing.T) {
	svc := NewOrderService(&orderRepoMock{}, logger.Nop())

	tests := []struct {
		name    string
		items   []models.OrderItem
		wantErr *apperrors.Error
	}{
		{"no items", nil, apperrors.MissingField},
		{"missing product id", []models.OrderItem{{Name: "Mug", Price: 1, Quantity: 1}}, apperrors.InvalidInput},
		{"missing name", []models.OrderItem{{ProductID: "p1", Price: 1, Quantity: 1}}, apperrors.InvalidInput},
		{"zero quantity", []models.OrderItem{{ProductID: "p1", Name: "Mug", Price: 1, Quantity: 0}}, apperrors.InvalidInput},
		{"negative price", []models.OrderItem{{ProductID: "p1", Name: "Mug", Price: -1, Quantity: 1}}, apperrors.InvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), selfPrincipal("u1"), CreateOrderInput{Items: tt.items})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestOrderService_Get_Ownership(t *testing.T) {
	orders := &orderRepoMock{
		findByIDFn: func(_ context.Context, id string) (models.Order, error) {
			return models.Order{ID: id, UserID: "u1", Status: models.OrderPending}, nil
		},
	}
	svc := NewOrderService(orders, logger.Nop())

	_, err := svc.Get(context.Background(), selfPrincipal("u1"), "o1")
	assert.NoError(t, err, "owner reads own order")

	_, err = svc.Get(context.Background(), adminPrincipal(), "o1")
	assert.NoError(t, err, "admin reads any order")

	_, err = svc.Get(context.Background(), selfPrincipal("u2"), "o1")
	assert.ErrorIs(t, err, apperrors.NotAllowed)
}

func TestOrderService_List_ScopesNonPrivilegedCallers(t *testing.T) {
	var seen store.OrderFilter
	orders := &orderRepoMock{
		listFn: func(_ context.Context, filter store.OrderFilter, _ models.PageQuery) ([]models.Order, int, error) {
			seen = filter
			return nil, 0, nil
		},
	}
	svc := NewOrderService(orders, logger.Nop())

	_, _, err := svc.List(context.Background(), selfPrincipal("u1"), "", models.PageQuery{})
	require.NoError(t, err)
	assert.Equal(t, "u1", seen.UserID, "plain users only see their own orders")

	_, _, err = svc.List(context.Background(), adminPrincipal(), models.OrderShipped, models.PageQuery{})
	require.NoError(t, err)
	assert.Empty(t, seen.UserID, "privileged callers see every order")
	assert.Equal(t, models.OrderShipped, seen.Status)
}

func TestOrderService_List_RejectsUnknownStatus(t *testing.T) {
	svc := NewOrderService(&orderRepoMock{}, logger.Nop())

	_, _, err := svc.List(context.Background(), adminPrincipal(), "refunded", models.PageQuery{})
	assert.ErrorIs(t, err, apperrors.InvalidOrderStatus)
}

func TestOrderService_UpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		current models.OrderStatus
		next    models.OrderStatus
		wantErr bool
	}{
		{"pending to processing", models.OrderPending, models.OrderProcessing, false},
		{"processing to shipped", models.OrderProcessing, models.OrderShipped, false},
		{"shipped to delivered", models.OrderShipped, models.OrderDelivered, false},
		{"pending to shipped skips a step", models.OrderPending, models.OrderShipped, true},
		{"delivered is terminal", models.OrderDelivered, models.OrderProcessing, true},
		{"backwards move", models.OrderShipped, models.OrderProcessing, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &orderRepoMock{
				findByIDFn: func(_ context.Context, id string) (models.Order, error) {
					return models.Order{ID: id, UserID: "u1", Status: tt.current}, nil
				},
				updateStatusFn: func(_ context.Context, id string, status models.OrderStatus) (models.Order, error) {
					return models.Order{ID: id, UserID: "u1", Status: status}, nil
				},
			}
			svc := NewOrderService(orders, logger.Nop())

			order, err := svc.UpdateStatus(context.Background(), "o1", tt.next)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.InvalidOrderStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, order.Status)
		})
	}
}

func TestOrderService_UpdateStatus_CancelledNotReachableHere(t *testing.T) {
	svc := NewOrderService(&orderRepoMock{}, logger.Nop())

	_, err := svc.UpdateStatus(context.Background(), "o1", models.OrderCancelled)
	assert.ErrorIs(t, err, apperrors.InvalidOrderStatus, "cancellation has its own operation")
}

func TestOrderService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		current   models.OrderStatus
		principal models.Principal
		wantErr   error
	}{
		{"owner cancels pending order", models.OrderPending, selfPrincipal("u1"), nil},
		{"owner cancels processing order", models.OrderProcessing, selfPrincipal("u1"), nil},
		{"admin cancels any order", models.OrderPending, adminPrincipal(), nil},
		{"shipped order cannot be cancelled", models.OrderShipped, selfPrincipal("u1"), apperrors.CannotCancelOrder},
		{"delivered order cannot be cancelled", models.OrderDelivered, selfPrincipal("u1"), apperrors.CannotCancelOrder},
		{"foreign order", models.OrderPending, selfPrincipal("u2"), apperrors.NotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := &orderRepoMock{
				findByIDFn: func(_ context.Context, id string) (models.Order, error) {
					return models.Order{ID: id, UserID: "u1", Status: tt.current}, nil
				},
				updateStatusFn: func(_ context.Context, id string, status models.OrderStatus) (models.Order, error) {
					return models.Order{ID: id, UserID: "u1", Status: status}, nil
				},
			}
			svc := NewOrderService(orders, logger.Nop())

			order, err := svc.Cancel(context.Background(), tt.principal, "o1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.OrderCancelled, order.Status)
		})
	}
}

func TestOrderService_Get_NotFound(t *testing.T) {
	orders := &orderRepoMock{
		findByIDFn: func(_ context.Context, _ string) (models.Order, error) {
			return models.Order{}, store.ErrNotFound
		},
	}
	svc := NewOrderService(orders, logger.Nop())

	_, err := svc.Get(context.Background(), adminPrincipal(), "missing")
	assert.ErrorIs(t, err, apperrors.OrderNotFound)
}
