package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/candleworks/storefront/internal/models"
)

type InvoiceClient interface {
	Create(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error)
	Read(ctx context.Context, invoiceNumber int) (*models.Invoice, error)
}

type invoiceClient struct {
	api *API
}

func NewInvoiceClient(api *API) InvoiceClient {
	return &invoiceClient{api: api}
}

func (c *invoiceClient) Create(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	invoice := &models.Invoice{}

	if err := c.api.do(ctx, "invoice", "create", http.MethodPost, "/invoice/create", req, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}

func (c *invoiceClient) Read(ctx context.Context, invoiceNumber int) (*models.Invoice, error) {
	invoice := &models.Invoice{}

	if err := c.api.do(ctx, "invoice", "read", http.MethodGet, fmt.Sprintf("/invoice/read/%d", invoiceNumber), nil, invoice); err != nil {
		return nil, err
	}

	return invoice, nil
}
