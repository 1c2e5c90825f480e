package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/candleworks/storefront/internal/models"
)

type ProductClient interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	Read(ctx context.Context, productNumber int) (*models.Product, error)
	Update(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
}

type productClient struct {
	api *API
}

func NewProductClient(api *API) ProductClient {
	return &productClient{api: api}
}

func (c *productClient) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{}

	if err := c.api.do(ctx, "product", "create", http.MethodPost, "/product/create", req, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (c *productClient) Read(ctx context.Context, productNumber int) (*models.Product, error) {
	product := &models.Product{}

	if err := c.api.do(ctx, "product", "read", http.MethodGet, fmt.Sprintf("/product/read/%d", productNumber), nil, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (c *productClient) Update(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error) {
	product := &models.Product{}

	if err := c.api.do(ctx, "product", "update", http.MethodPut, "/product/update", req, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (c *productClient) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	if err := c.api.do(ctx, "product", "list", http.MethodGet, "/product/all", nil, &products); err != nil {
		return nil, err
	}

	return products, nil
}
