package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/candleworks/storefront/internal/models"
)

type ManufacturerClient interface {
	Create(ctx context.Context, req *models.CreateManufacturerRequest) (*models.Manufacturer, error)
	Read(ctx context.Context, manufacturerNumber int) (*models.Manufacturer, error)
	Update(ctx context.Context, manufacturer *models.Manufacturer) (*models.Manufacturer, error)
	List(ctx context.Context) ([]models.Manufacturer, error)
}

type manufacturerClient struct {
	api *API
}

func NewManufacturerClient(api *API) ManufacturerClient {
	return &manufacturerClient{api: api}
}

func (c *manufacturerClient) Create(ctx context.Context, req *models.CreateManufacturerRequest) (*models.Manufacturer, error) {
	manufacturer := &models.Manufacturer{}

	if err := c.api.do(ctx, "manufacture", "create", http.MethodPost, "/manufacture/create", req, manufacturer); err != nil {
		return nil, err
	}

	return manufacturer, nil
}

func (c *manufacturerClient) Read(ctx context.Context, manufacturerNumber int) (*models.Manufacturer, error) {
	manufacturer := &models.Manufacturer{}

	if err := c.api.do(ctx, "manufacture", "read", http.MethodGet, fmt.Sprintf("/manufacture/read/%d", manufacturerNumber), nil, manufacturer); err != nil {
		return nil, err
	}

	return manufacturer, nil
}

func (c *manufacturerClient) Update(ctx context.Context, manufacturer *models.Manufacturer) (*models.Manufacturer, error) {
	updated := &models.Manufacturer{}

	if err := c.api.do(ctx, "manufacture", "update", http.MethodPut, "/manufacture/update", manufacturer, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (c *manufacturerClient) List(ctx context.Context) ([]models.Manufacturer, error) {
	var manufacturers []models.Manufacturer

	if err := c.api.do(ctx, "manufacture", "list", http.MethodGet, "/manufacture/all", nil, &manufacturers); err != nil {
		return nil, err
	}

	return manufacturers, nil
}
