package models

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// CanTransitionTo reports whether the backend's status progression permits
// moving from s to next: Pending -> Processing -> Shipped -> Delivered, with
// Cancelled reachable from any non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == OrderStatusDelivered || s == OrderStatusCancelled {
		return false
	}

	if next == OrderStatusCancelled {
		return true
	}

	switch s {
	case OrderStatusPending:
		return next == OrderStatusProcessing
	case OrderStatusProcessing:
		return next == OrderStatusShipped
	case OrderStatusShipped:
		return next == OrderStatusDelivered
	}

	return false
}

type OrderItem struct {
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Product   Product `json:"product"`
}

type Order struct {
	OrderNumber string        `json:"orderNumber"`
	OrderDate   *time.Time    `json:"orderDate,omitempty"`
	OrderStatus OrderStatus   `json:"orderStatus"`
	RetailStore *Store        `json:"retailStore,omitempty"`
	OrderItems  []OrderItem   `json:"orderItems"`
	Delivery    *Delivery     `json:"delivery,omitempty"`
	Invoice     *Invoice      `json:"invoice,omitempty"`
	Payment     *Payment      `json:"payment,omitempty"`
}

// CreateOrderRequest is the final payload of the checkout sequence. The
// delivery, invoice and payment are the server-assigned resources created in
// the preceding steps, round-tripped unchanged.
type CreateOrderRequest struct {
	OrderStatus OrderStatus `json:"orderStatus"`
	RetailStore *Store      `json:"retailStore"`
	OrderItems  []OrderItem `json:"orderItems"`
	Delivery    *Delivery   `json:"delivery"`
	Invoice     *Invoice    `json:"invoice"`
	Payment     *Payment    `json:"payment"`
}

type UpdateOrderStatusRequest struct {
	OrderNumber string      `json:"orderNumber" validate:"required"`
	OrderStatus OrderStatus `json:"orderStatus" validate:"required,oneof=Pending Processing Shipped Delivered Cancelled"`
}
