package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/fayrashop/api/internal/apperrors"
	"github.com/fayrashop/api/internal/logger"
	"github.com/fayrashop/api/internal/store"
	"github.com/fayrashop/api/models"
)

// orderService is the concrete implementation of OrderService.
type orderService struct {
	orders store.OrderRepository
	logger *logger.Logger
}

// NewOrderService constructs an OrderService over the given repository.
func NewOrderService(orders store.OrderRepository, logger *logger.Logger) OrderService {
	return &orderService{
		orders: orders,
		logger: logger,
	}
}

// Create places a new order owned by the principal. The total is computed
// server-side; a client-supplied total is never trusted.
func (s *orderService) Create(ctx context.Context, principal models.Principal, in CreateOrderInput) (models.Order, error) {
	log := logger.FromContext(ctx)

	if err := validateOrderItems(in.Items); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		UserID: principal.ID,
		Items:  in.Items,
		Total:  models.ComputeTotal(in.Items),
		Status: models.OrderPending,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		log.Err(err).Str("user_id", principal.ID).Msg("error creating order")
		return models.Order{}, fmt.Errorf("error creating order: %w", err)
	}

	return created, nil
}

// Get returns a single order, enforcing ownership for non-privileged
// callers.
func (s *orderService) Get(ctx context.Context, principal models.Principal, id string) (models.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	if !canAccessOrder(principal, order) {
		return models.Order{}, apperrors.NotAllowed
	}

	return order, nil
}

// List returns one page of orders. Non-privileged principals are always
// scoped to their own orders regardless of the requested filter.
func (s *orderService) List(ctx context.Context, principal models.Principal, status models.OrderStatus, q models.PageQuery) ([]models.Order, models.PageMeta, error) {
	log := logger.FromContext(ctx)

	if status != "" && !status.Valid() {
		return nil, models.PageMeta{}, apperrors.InvalidOrderStatus
	}

	filter := store.OrderFilter{Status: status}
	if !privileged(principal) {
		filter.UserID = principal.ID
	}

	q = q.Normalize()

	orders, total, err := s.orders.List(ctx, filter, q)
	if err != nil {
		log.Err(err).Msg("error listing orders")
		return nil, models.PageMeta{}, fmt.Errorf("error listing orders: %w", err)
	}

	return orders, models.NewPageMeta(q, total), nil
}

// UpdateStatus advances the order's lifecycle. Only the forward transitions
// pending → processing → shipped → delivered are allowed; cancellation goes
// through Cancel.
func (s *orderService) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	log := logger.FromContext(ctx)

	if !status.Valid() || status == models.OrderCancelled {
		return models.Order{}, apperrors.InvalidOrderStatus
	}

	order, err := s.findOrder(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	if !order.Status.CanTransitionTo(status) {
		return models.Order{}, apperrors.InvalidOrderStatus.WithMessage(
			fmt.Sprintf("Cannot move order from %q to %q", order.Status, status))
	}

	updated, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Order{}, apperrors.OrderNotFound
		}
		log.Err(err).Str("order_id", id).Msg("error updating order status")
		return models.Order{}, fmt.Errorf("error updating order status: %w", err)
	}

	return updated, nil
}

// Cancel cancels an order that has not shipped yet, enforcing ownership
// for non-privileged callers.
func (s *orderService) Cancel(ctx context.Context, principal models.Principal, id string) (models.Order, error) {
	log := logger.FromContext(ctx)

	order, err := s.findOrder(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	if !canAccessOrder(principal, order) {
		return models.Order{}, apperrors.NotAllowed
	}

	if !order.Status.Cancellable() {
		return models.Order{}, apperrors.CannotCancelOrder
	}

	cancelled, err := s.orders.UpdateStatus(ctx, id, models.OrderCancelled)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Order{}, apperrors.OrderNotFound
		}
		log.Err(err).Str("order_id", id).Msg("error cancelling order")
		return models.Order{}, fmt.Errorf("error cancelling order: %w", err)
	}

	return cancelled, nil
}

func (s *orderService) findOrder(ctx context.Context, id string) (models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Order{}, apperrors.OrderNotFound
		}
		logger.FromContext(ctx).Err(err).Str("order_id", id).Msg("error finding order")
		return models.Order{}, fmt.Errorf("error finding order: %w", err)
	}

	return order, nil
}

func validateOrderItems(items []models.OrderItem) error {
	if len(items) == 0 {
		return apperrors.MissingField.WithMessage("Order must contain at least one item")
	}

	for i, item := range items {
		switch {
		case item.ProductID == "":
			return apperrors.InvalidInput.WithDetails(itemFailure(i, "productId is required"))
		case item.Name == "":
			return apperrors.InvalidInput.WithDetails(itemFailure(i, "name is required"))
		case item.Quantity <= 0:
			return apperrors.InvalidInput.WithDetails(itemFailure(i, "quantity must be positive"))
		case item.Price < 0:
			return apperrors.InvalidInput.WithDetails(itemFailure(i, "price cannot be negative"))
		}
	}

	return nil
}

func itemFailure(index int, reason string) map[string]any {
	return map[string]any{"index": index, "reason": reason}
}

// privileged reports whether the principal may see and manage other users'
// orders.
func privileged(principal models.Principal) bool {
	return principal.RoleName == models.RoleAdmin || principal.RoleName == models.RoleManager
}

func canAccessOrder(principal models.Principal, order models.Order) bool {
	return order.UserID == principal.ID || privileged(principal)
}
