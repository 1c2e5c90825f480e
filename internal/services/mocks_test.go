package service_test

import (
	"context"

	"github.com/candleworks/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockDeliveryClient struct{ mock.Mock }

func (m *MockDeliveryClient) Create(ctx context.Context, req *models.CreateDeliveryRequest) (*models.Delivery, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Delivery), args.Error(1)
}

func (m *MockDeliveryClient) Read(ctx context.Context, deliveryNumber int) (*models.Delivery, error) {
	args := m.Called(ctx, deliveryNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Delivery), args.Error(1)
}

type MockInvoiceClient struct{ mock.Mock }

func (m *MockInvoiceClient) Create(ctx context.Context, req *models.CreateInvoiceRequest) (*models.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceClient) Read(ctx context.Context, invoiceNumber int) (*models.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Invoice), args.Error(1)
}

type MockPaymentMethodClient struct{ mock.Mock }

func (m *MockPaymentMethodClient) Create(ctx context.Context, req *models.CreatePaymentMethodRequest) (*models.PaymentMethod, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodClient) Read(ctx context.Context, id int) (*models.PaymentMethod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.PaymentMethod), args.Error(1)
}

type MockPaymentClient struct{ mock.Mock }

func (m *MockPaymentClient) Create(ctx context.Context, req *models.CreatePaymentRequest) (*models.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentClient) Read(ctx context.Context, paymentNumber int) (*models.Payment, error) {
	args := m.Called(ctx, paymentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Payment), args.Error(1)
}

type MockOrderClient struct{ mock.Mock }

func (m *MockOrderClient) Create(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderClient) Read(ctx context.Context, orderNumber string) (*models.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderClient) UpdateStatus(ctx context.Context, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderClient) ListByStore(ctx context.Context, storeNumber string) ([]models.Order, error) {
	args := m.Called(ctx, storeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Order), args.Error(1)
}

type MockStoreClient struct{ mock.Mock }

func (m *MockStoreClient) Register(ctx context.Context, req *models.RegisterStoreRequest) (*models.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.LoginResult), args.Error(1)
}

func (m *MockStoreClient) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.LoginResult), args.Error(1)
}

func (m *MockStoreClient) Read(ctx context.Context, storeNumber string) (*models.Store, error) {
	args := m.Called(ctx, storeNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Store), args.Error(1)
}

func (m *MockStoreClient) List(ctx context.Context) ([]models.Store, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Store), args.Error(1)
}

type MockAdminClient struct{ mock.Mock }

func (m *MockAdminClient) Register(ctx context.Context, req *models.RegisterAdminRequest) (*models.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.LoginResult), args.Error(1)
}

func (m *MockAdminClient) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.LoginResult), args.Error(1)
}

type MockProductClient struct{ mock.Mock }

func (m *MockProductClient) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductClient) Read(ctx context.Context, productNumber int) (*models.Product, error) {
	args := m.Called(ctx, productNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductClient) Update(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductClient) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Product), args.Error(1)
}

type MockManufacturerClient struct{ mock.Mock }

func (m *MockManufacturerClient) Create(ctx context.Context, req *models.CreateManufacturerRequest) (*models.Manufacturer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Manufacturer), args.Error(1)
}

func (m *MockManufacturerClient) Read(ctx context.Context, manufacturerNumber int) (*models.Manufacturer, error) {
	args := m.Called(ctx, manufacturerNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Manufacturer), args.Error(1)
}

func (m *MockManufacturerClient) Update(ctx context.Context, manufacturer *models.Manufacturer) (*models.Manufacturer, error) {
	args := m.Called(ctx, manufacturer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Manufacturer), args.Error(1)
}

func (m *MockManufacturerClient) List(ctx context.Context) ([]models.Manufacturer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]models.Manufacturer), args.Error(1)
}

type MockAuthClient struct{ mock.Mock }

func (m *MockAuthClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	args := m.Called(ctx, creds)

	return args.String(0), args.Error(1)
}
