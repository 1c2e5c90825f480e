package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/candleworks/storefront/internal/models"
)

type StoreClient interface {
	Register(ctx context.Context, req *models.RegisterStoreRequest) (*models.LoginResult, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
	Read(ctx context.Context, storeNumber string) (*models.Store, error)
	List(ctx context.Context) ([]models.Store, error)
}

type storeClient struct {
	api *API
}

func NewStoreClient(api *API) StoreClient {
	return &storeClient{api: api}
}

func (c *storeClient) Register(ctx context.Context, req *models.RegisterStoreRequest) (*models.LoginResult, error) {
	result := &models.LoginResult{}

	if err := c.api.do(ctx, "store", "register", http.MethodPost, "/store/register", req, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *storeClient) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	result := &models.LoginResult{}

	if err := c.api.do(ctx, "store", "login", http.MethodPost, "/store/login", req, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *storeClient) Read(ctx context.Context, storeNumber string) (*models.Store, error) {
	store := &models.Store{}

	if err := c.api.do(ctx, "store", "read", http.MethodGet, fmt.Sprintf("/store/read/%s", storeNumber), nil, store); err != nil {
		return nil, err
	}

	return store, nil
}

func (c *storeClient) List(ctx context.Context) ([]models.Store, error) {
	var stores []models.Store

	if err := c.api.do(ctx, "store", "list", http.MethodGet, "/store/all", nil, &stores); err != nil {
		return nil, err
	}

	return stores, nil
}
