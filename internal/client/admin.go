package client

import (
	"context"
	"net/http"

	"github.com/candleworks/storefront/internal/models"
)

type AdminClient interface {
	Register(ctx context.Context, req *models.RegisterAdminRequest) (*models.LoginResult, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error)
}

type adminClient struct {
	api *API
}

func NewAdminClient(api *API) AdminClient {
	return &adminClient{api: api}
}

func (c *adminClient) Register(ctx context.Context, req *models.RegisterAdminRequest) (*models.LoginResult, error) {
	result := &models.LoginResult{}

	if err := c.api.do(ctx, "admin", "register", http.MethodPost, "/admin/register", req, result); err != nil {
		return nil, err
	}

	return result, nil
}

func (c *adminClient) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	result := &models.LoginResult{}

	if err := c.api.do(ctx, "admin", "login", http.MethodPost, "/admin/login", req, result); err != nil {
		return nil, err
	}

	return result, nil
}
