package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/candleworks/storefront/internal/client"
	"github.com/candleworks/storefront/internal/errors"
	"github.com/candleworks/storefront/internal/models"
)

// OrdersService serves the order-tracking screens: history per store and
// status administration. Status transitions are validated locally against
// the backend's progression before the update call is issued.
type OrdersService struct {
	orders client.OrderClient
}

func NewOrdersService(orders client.OrderClient) *OrdersService {
	return &OrdersService{orders: orders}
}

func (s *OrdersService) OrdersForStore(ctx context.Context, storeNumber string) ([]models.Order, error) {
	if storeNumber == "" {
		return nil, errors.ValidationError("Store number is required")
	}

	return s.orders.ListByStore(ctx, storeNumber)
}

func (s *OrdersService) Order(ctx context.Context, orderNumber string) (*models.Order, error) {
	if orderNumber == "" {
		return nil, errors.ValidationError("Order number is required")
	}

	return s.orders.Read(ctx, orderNumber)
}

func (s *OrdersService) UpdateOrderStatus(ctx context.Context, orderNumber string, next models.OrderStatus) (*models.Order, error) {
	if orderNumber == "" {
		return nil, errors.ValidationError("Order number is required")
	}

	current, err := s.orders.Read(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	if !current.OrderStatus.CanTransitionTo(next) {
		return nil, errors.ValidationError(
			fmt.Sprintf("Cannot move order from %s to %s", current.OrderStatus, next))
	}

	updated, err := s.orders.UpdateStatus(ctx, &models.UpdateOrderStatusRequest{
		OrderNumber: orderNumber,
		OrderStatus: next,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order status updated",
		slog.String("orderNumber", orderNumber),
		slog.String("from", string(current.OrderStatus)),
		slog.String("to", string(next)),
	)

	return updated, nil
}
