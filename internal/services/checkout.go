package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/candleworks/storefront/internal/client"
	"github.com/candleworks/storefront/internal/errors"
	"github.com/candleworks/storefront/internal/metrics"
	"github.com/candleworks/storefront/internal/models"
)

type CheckoutStep string

const (
	StepDelivery      CheckoutStep = "Delivery"
	StepInvoice       CheckoutStep = "Invoice"
	StepPaymentMethod CheckoutStep = "PaymentMethod"
	StepPayment       CheckoutStep = "Payment"
	StepOrder         CheckoutStep = "Order"
)

// CheckoutState accumulates the server-assigned resources as the checkout
// sequence progresses. On failure it records exactly which resources were
// already persisted; those are NOT cleaned up (the backend keeps the orphaned
// rows), but exposing them here lets a compensation pass be added later
// without restructuring the sequence.
type CheckoutState struct {
	Delivery      *models.Delivery
	Invoice       *models.Invoice
	PaymentMethod *models.PaymentMethod
	Payment       *models.Payment
	Order         *models.Order
}

// Created lists the steps whose resources were persisted on the backend.
func (s *CheckoutState) Created() []CheckoutStep {
	var steps []CheckoutStep

	if s.Delivery != nil {
		steps = append(steps, StepDelivery)
	}

	if s.Invoice != nil {
		steps = append(steps, StepInvoice)
	}

	if s.PaymentMethod != nil {
		steps = append(steps, StepPaymentMethod)
	}

	if s.Payment != nil {
		steps = append(steps, StepPayment)
	}

	if s.Order != nil {
		steps = append(steps, StepOrder)
	}

	return steps
}

// StepError reports a checkout aborted at a named step, wrapping the
// underlying rejection or transport failure. Earlier-created resources
// remain on the backend; see State.
type StepError struct {
	Step  CheckoutStep
	State *CheckoutState
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("checkout failed at %s step: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// CheckoutService turns a cart into a persisted order via the fixed
// five-call sequence Delivery, Invoice, PaymentMethod, Payment, Order. Each
// step's result feeds the next, so the calls never run concurrently.
type CheckoutService struct {
	deliveries     client.DeliveryClient
	invoices       client.InvoiceClient
	paymentMethods client.PaymentMethodClient
	payments       client.PaymentClient
	orders         client.OrderClient

	// serializes PlaceOrder so a rapid double submit cannot create two
	// orders from the same cart snapshot
	mu sync.Mutex
}

func NewCheckoutService(
	deliveries client.DeliveryClient,
	invoices client.InvoiceClient,
	paymentMethods client.PaymentMethodClient,
	payments client.PaymentClient,
	orders client.OrderClient,
) *CheckoutService {
	return &CheckoutService{
		deliveries:     deliveries,
		invoices:       invoices,
		paymentMethods: paymentMethods,
		payments:       payments,
		orders:         orders,
	}
}

// PlaceOrder runs the checkout sequence and returns the created order. The
// sequence is not transactional: a failure at step N leaves steps 1..N-1
// persisted on the backend, and the returned StepError names the failing
// step. The cart is never mutated here; the caller clears it after success.
func (s *CheckoutService) PlaceOrder(ctx context.Context, cart *Cart, store *models.Store, paymentType models.PaymentMethodType) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, errors.ValidationError("Cannot place an order with an empty cart")
	}

	if store == nil {
		return nil, errors.ValidationError("Store information is required before checkout")
	}

	switch paymentType {
	case models.PaymentMethodCash, models.PaymentMethodCreditCard, models.PaymentMethodEFT:
	default:
		return nil, errors.ValidationError("Unknown payment method type")
	}

	total := cart.Total()
	state := &CheckoutState{}

	delivery, err := s.deliveries.Create(ctx, &models.CreateDeliveryRequest{Status: models.DeliveryStatusPending})
	if err != nil {
		return nil, s.fail(StepDelivery, state, err)
	}

	state.Delivery = delivery

	invoice, err := s.invoices.Create(ctx, &models.CreateInvoiceRequest{TotalAmount: total})
	if err != nil {
		return nil, s.fail(StepInvoice, state, err)
	}

	state.Invoice = invoice

	paymentMethod, err := s.paymentMethods.Create(ctx, &models.CreatePaymentMethodRequest{Type: paymentType})
	if err != nil {
		return nil, s.fail(StepPaymentMethod, state, err)
	}

	state.PaymentMethod = paymentMethod

	payment, err := s.payments.Create(ctx, &models.CreatePaymentRequest{
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return nil, s.fail(StepPayment, state, err)
	}

	state.Payment = payment

	orderItems := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		orderItems = append(orderItems, models.OrderItem{
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			Product:   line.Product,
		})
	}

	order, err := s.orders.Create(ctx, &models.CreateOrderRequest{
		OrderStatus: models.OrderStatusPending,
		RetailStore: store,
		OrderItems:  orderItems,
		Delivery:    delivery,
		Invoice:     invoice,
		Payment:     payment,
	})
	if err != nil {
		return nil, s.fail(StepOrder, state, err)
	}

	state.Order = order

	metrics.ObserveCheckoutSuccess()
	slog.Info("order placed",
		slog.String("orderNumber", order.OrderNumber),
		slog.String("storeNumber", store.StoreNumber),
		slog.Float64("totalAmount", total),
		slog.Int("items", len(orderItems)),
	)

	return order, nil
}

func (s *CheckoutService) fail(step CheckoutStep, state *CheckoutState, err error) error {
	metrics.ObserveCheckoutFailure(string(step))
	slog.Error("checkout step failed",
		slog.String("step", string(step)),
		slog.Any("persisted", state.Created()),
		slog.String("error", err.Error()),
	)

	return &StepError{Step: step, State: state, Err: err}
}
