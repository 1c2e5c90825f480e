package client

import (
	"context"
	"net/http"

	"github.com/candleworks/storefront/internal/models"
)

type AuthClient interface {
	// Login exchanges credentials for a bearer token. The backend answers
	// this endpoint with the token as a plain-text body.
	Login(ctx context.Context, creds models.Credentials) (string, error)
}

type authClient struct {
	api *API
}

func NewAuthClient(api *API) AuthClient {
	return &authClient{api: api}
}

func (c *authClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return c.api.doText(ctx, "auth", "login", http.MethodPost, "/auth/login", creds)
}
