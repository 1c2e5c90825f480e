package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/candleworks/storefront/internal/models"
)

type DeliveryClient interface {
	Create(ctx context.Context, req *models.CreateDeliveryRequest) (*models.Delivery, error)
	Read(ctx context.Context, deliveryNumber int) (*models.Delivery, error)
}

type deliveryClient struct {
	api *API
}

func NewDeliveryClient(api *API) DeliveryClient {
	return &deliveryClient{api: api}
}

func (c *deliveryClient) Create(ctx context.Context, req *models.CreateDeliveryRequest) (*models.Delivery, error) {
	delivery := &models.Delivery{}

	if err := c.api.do(ctx, "delivery", "create", http.MethodPost, "/delivery/create", req, delivery); err != nil {
		return nil, err
	}

	return delivery, nil
}

func (c *deliveryClient) Read(ctx context.Context, deliveryNumber int) (*models.Delivery, error) {
	delivery := &models.Delivery{}

	if err := c.api.do(ctx, "delivery", "read", http.MethodGet, fmt.Sprintf("/delivery/read/%d", deliveryNumber), nil, delivery); err != nil {
		return nil, err
	}

	return delivery, nil
}
