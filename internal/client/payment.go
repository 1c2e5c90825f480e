package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/candleworks/storefront/internal/models"
)

type PaymentMethodClient interface {
	Create(ctx context.Context, req *models.CreatePaymentMethodRequest) (*models.PaymentMethod, error)
	Read(ctx context.Context, id int) (*models.PaymentMethod, error)
}

type paymentMethodClient struct {
	api *API
}

func NewPaymentMethodClient(api *API) PaymentMethodClient {
	return &paymentMethodClient{api: api}
}

func (c *paymentMethodClient) Create(ctx context.Context, req *models.CreatePaymentMethodRequest) (*models.PaymentMethod, error) {
	method := &models.PaymentMethod{}

	if err := c.api.do(ctx, "payment-method", "create", http.MethodPost, "/payment-method/create", req, method); err != nil {
		return nil, err
	}

	return method, nil
}

func (c *paymentMethodClient) Read(ctx context.Context, id int) (*models.PaymentMethod, error) {
	method := &models.PaymentMethod{}

	if err := c.api.do(ctx, "payment-method", "read", http.MethodGet, fmt.Sprintf("/payment-method/read/%d", id), nil, method); err != nil {
		return nil, err
	}

	return method, nil
}

type PaymentClient interface {
	Create(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error)
	Read(ctx context.Context, paymentNumber int) (*models.Payment, error)
}

type paymentClient struct {
	api *API
}

func NewPaymentClient(api *API) PaymentClient {
	return &paymentClient{api: api}
}

func (c *paymentClient) Create(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	payment := &models.Payment{}

	if err := c.api.do(ctx, "payment", "create", http.MethodPost, "/payment/create", req, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

func (c *paymentClient) Read(ctx context.Context, paymentNumber int) (*models.Payment, error) {
	payment := &models.Payment{}

	if err := c.api.do(ctx, "payment", "read", http.MethodGet, fmt.Sprintf("/payment/read/%d", paymentNumber), nil, payment); err != nil {
		return nil, err
	}

	return payment, nil
}
