package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/candleworks/storefront/internal/errors"
	"github.com/candleworks/storefront/internal/models"
	service "github.com/candleworks/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	deliveries     *MockDeliveryClient
	invoices       *MockInvoiceClient
	paymentMethods *MockPaymentMethodClient
	payments       *MockPaymentClient
	orders         *MockOrderClient
	service        *service.CheckoutService
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		deliveries:     &MockDeliveryClient{},
		invoices:       &MockInvoiceClient{},
		paymentMethods: &MockPaymentMethodClient{},
		payments:       &MockPaymentClient{},
		orders:         &MockOrderClient{},
	}
	f.service = service.NewCheckoutService(f.deliveries, f.invoices, f.paymentMethods, f.payments, f.orders)

	return f
}

func testStore() *models.Store {
	return &models.Store{StoreNumber: "ST-7", StoreName: "Wick & Wax"}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	// Arrange
	f := newCheckoutFixture()
	ctx := context.Background()

	cart := service.NewCart()
	cart.AddLine(models.Product{ProductNumber: 3, Name: "Amber Noir", Price: 20.00})

	var callOrder []string
	record := func(step string) func(mock.Arguments) {
		return func(mock.Arguments) { callOrder = append(callOrder, step) }
	}

	delivery := &models.Delivery{DeliveryNumber: 41, Status: models.DeliveryStatusPending}
	invoice := &models.Invoice{InvoiceNumber: 52, TotalAmount: 20.00}
	paymentMethod := &models.PaymentMethod{ID: 9, Type: models.PaymentMethodCash}
	payment := &models.Payment{PaymentNumber: 63, TotalAmount: 20.00, PaymentMethod: paymentMethod}

	f.deliveries.On("Create", ctx, &models.CreateDeliveryRequest{Status: models.DeliveryStatusPending}).
		Run(record("Delivery")).Return(delivery, nil).Once()
	f.invoices.On("Create", ctx, &models.CreateInvoiceRequest{TotalAmount: 20.00}).
		Run(record("Invoice")).Return(invoice, nil).Once()
	f.paymentMethods.On("Create", ctx, &models.CreatePaymentMethodRequest{Type: models.PaymentMethodCash}).
		Run(record("PaymentMethod")).Return(paymentMethod, nil).Once()
	f.payments.On("Create", ctx, &models.CreatePaymentRequest{TotalAmount: 20.00, PaymentMethod: paymentMethod}).
		Run(record("Payment")).Return(payment, nil).Once()
	f.orders.On("Create", ctx, mock.AnythingOfType("*models.CreateOrderRequest")).
		Run(record("Order")).
		Return(&models.Order{
			OrderNumber: "ORD-1001",
			OrderStatus: models.OrderStatusPending,
			OrderItems:  []models.OrderItem{{Quantity: 1, UnitPrice: 20.00}},
			Payment:     payment,
		}, nil).Once()

	// Act
	order, err := f.service.PlaceOrder(ctx, cart, testStore(), models.PaymentMethodCash)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, []string{"Delivery", "Invoice", "PaymentMethod", "Payment", "Order"}, callOrder)
	assert.Equal(t, 20.00, order.OrderItems[0].UnitPrice)
	assert.Equal(t, 20.00, order.Payment.TotalAmount)

	// The order payload round-trips the server-assigned sub-resources unchanged.
	sent := f.orders.Calls[0].Arguments.Get(1).(*models.CreateOrderRequest)
	assert.Equal(t, delivery, sent.Delivery)
	assert.Equal(t, invoice, sent.Invoice)
	assert.Equal(t, payment, sent.Payment)
	assert.Equal(t, models.OrderStatusPending, sent.OrderStatus)
	assert.Equal(t, "ST-7", sent.RetailStore.StoreNumber)

	// The cart is untouched; clearing is the caller's job.
	assert.Equal(t, 20.00, cart.Total())

	f.deliveries.AssertExpectations(t)
	f.invoices.AssertExpectations(t)
	f.paymentMethods.AssertExpectations(t)
	f.payments.AssertExpectations(t)
	f.orders.AssertExpectations(t)
}

func TestPlaceOrderFailsAtPaymentMethod(t *testing.T) {
	// Arrange
	f := newCheckoutFixture()
	ctx := context.Background()

	cart := service.NewCart()
	cart.AddLine(models.Product{ProductNumber: 3, Name: "Amber Noir", Price: 20.00})

	rejection := appErrors.RemoteRejectedError(500, "payment method type not supported")

	f.deliveries.On("Create", ctx, mock.Anything).
		Return(&models.Delivery{DeliveryNumber: 41}, nil).Once()
	f.invoices.On("Create", ctx, mock.Anything).
		Return(&models.Invoice{InvoiceNumber: 52, TotalAmount: 20.00}, nil).Once()
	f.paymentMethods.On("Create", ctx, mock.Anything).
		Return(nil, rejection).Once()

	// Act
	order, err := f.service.PlaceOrder(ctx, cart, testStore(), models.PaymentMethodEFT)

	// Assert
	assert.Nil(t, order)

	var stepErr *service.StepError
	require.True(t, errors.As(err, &stepErr))
	assert.Equal(t, service.StepPaymentMethod, stepErr.Step)
	assert.ErrorIs(t, err, rejection)

	// Delivery and Invoice were persisted and are now orphaned; no later
	// step ran.
	assert.Equal(t, []service.CheckoutStep{service.StepDelivery, service.StepInvoice}, stepErr.State.Created())
	f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// The cart is left as-is for a retry from scratch.
	assert.Len(t, cart.Lines(), 1)

	f.deliveries.AssertExpectations(t)
	f.invoices.AssertExpectations(t)
	f.paymentMethods.AssertExpectations(t)
}

func TestPlaceOrderPreconditions(t *testing.T) {
	t.Run("Empty Cart Rejects Without Network Calls", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture()

		// Act
		order, err := f.service.PlaceOrder(context.Background(), service.NewCart(), testStore(), models.PaymentMethodCash)

		// Assert
		assert.Nil(t, order)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		f.deliveries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.paymentMethods.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing Store Rejects Locally", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture()
		cart := service.NewCart()
		cart.AddLine(models.Product{ProductNumber: 1, Price: 5.00})

		// Act
		_, err := f.service.PlaceOrder(context.Background(), cart, nil, models.PaymentMethodCash)

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		f.deliveries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Payment Type Rejects Locally", func(t *testing.T) {
		// Arrange
		f := newCheckoutFixture()
		cart := service.NewCart()
		cart.AddLine(models.Product{ProductNumber: 1, Price: 5.00})

		// Act
		_, err := f.service.PlaceOrder(context.Background(), cart, testStore(), models.PaymentMethodType("BARTER"))

		// Assert
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		f.deliveries.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

// Two sequential submissions of the same unmodified cart create two distinct
// orders. The backend does no dedup; the double-submission hazard is only
// guarded within a single CheckoutService (the in-flight mutex), not across
// calls.
func TestPlaceOrderIsNotIdempotent(t *testing.T) {
	// Arrange
	f := newCheckoutFixture()
	ctx := context.Background()

	cart := service.NewCart()
	cart.AddLine(models.Product{ProductNumber: 3, Name: "Amber Noir", Price: 20.00})

	f.deliveries.On("Create", ctx, mock.Anything).Return(&models.Delivery{DeliveryNumber: 41}, nil).Twice()
	f.invoices.On("Create", ctx, mock.Anything).Return(&models.Invoice{InvoiceNumber: 52}, nil).Twice()
	f.paymentMethods.On("Create", ctx, mock.Anything).Return(&models.PaymentMethod{ID: 9}, nil).Twice()
	f.payments.On("Create", ctx, mock.Anything).Return(&models.Payment{PaymentNumber: 63}, nil).Twice()
	f.orders.On("Create", ctx, mock.Anything).Return(&models.Order{OrderNumber: "ORD-1001"}, nil).Once()
	f.orders.On("Create", ctx, mock.Anything).Return(&models.Order{OrderNumber: "ORD-1002"}, nil).Once()

	// Act
	first, err1 := f.service.PlaceOrder(ctx, cart, testStore(), models.PaymentMethodCash)
	second, err2 := f.service.PlaceOrder(ctx, cart, testStore(), models.PaymentMethodCash)

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, first.OrderNumber, second.OrderNumber)
	f.orders.AssertNumberOfCalls(t, "Create", 2)
}
