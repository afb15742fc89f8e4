package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

// Order lifecycle states. Orders advance strictly forward
// (pending → processing → shipped → delivered) and may be cancelled only
// while pending or processing.
const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether an order in state s may move to next.
// Cancellation is handled separately via Cancellable.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderProcessing
	case OrderProcessing:
		return next == OrderShipped
	case OrderShipped:
		return next == OrderDelivered
	}
	return false
}

// Cancellable reports whether an order in state s may still be cancelled.
func (s OrderStatus) Cancellable() bool {
	return s == OrderPending || s == OrderProcessing
}

// OrderItem is a single line of an order. Price is the unit price captured
// at order time.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is a customer purchase consisting of one or more items.
type Order struct {
	// ID is the unique identifier of the order (UUID).
	ID string `json:"id"`

	// UserID is the owner of the order.
	UserID string `json:"userId"`

	// Items are the purchased lines. Stored as a JSON document.
	Items []OrderItem `json:"items"`

	// Total is the sum of item price x quantity, computed at creation.
	Total float64 `json:"total"`

	// Status is the current lifecycle state.
	Status OrderStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}

// ComputeTotal returns the sum of price x quantity over the given items.
func ComputeTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
