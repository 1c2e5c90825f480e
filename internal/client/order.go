package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/candleworks/storefront/internal/models"
)

type OrderClient interface {
	Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	Read(ctx context.Context, orderNumber string) (*models.Order, error)
	UpdateStatus(ctx context.Context, req *models.UpdateOrderStatusRequest) (*models.Order, error)
	ListByStore(ctx context.Context, storeNumber string) ([]models.Order, error)
}

type orderClient struct {
	api *API
}

func NewOrderClient(api *API) OrderClient {
	return &orderClient{api: api}
}

func (c *orderClient) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	order := &models.Order{}

	if err := c.api.do(ctx, "order", "create", http.MethodPost, "/order/create", req, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (c *orderClient) Read(ctx context.Context, orderNumber string) (*models.Order, error) {
	order := &models.Order{}

	if err := c.api.do(ctx, "order", "read", http.MethodGet, fmt.Sprintf("/order/read/%s", orderNumber), nil, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (c *orderClient) UpdateStatus(ctx context.Context, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	order := &models.Order{}

	if err := c.api.do(ctx, "order", "update", http.MethodPut, "/order/update", req, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (c *orderClient) ListByStore(ctx context.Context, storeNumber string) ([]models.Order, error) {
	var orders []models.Order

	if err := c.api.do(ctx, "order", "listByStore", http.MethodGet, fmt.Sprintf("/order/store/%s", storeNumber), nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}
