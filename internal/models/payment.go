package models

type PaymentMethodType string

const (
	PaymentMethodCash       PaymentMethodType = "CASH"
	PaymentMethodCreditCard PaymentMethodType = "CREDIT_CARD"
	PaymentMethodEFT        PaymentMethodType = "EFT"
)

type PaymentMethod struct {
	ID   int               `json:"id"`
	Type PaymentMethodType `json:"type"`
}

type CreatePaymentMethodRequest struct {
	Type PaymentMethodType `json:"type" validate:"required,oneof=CASH CREDIT_CARD EFT"`
}

type Payment struct {
	PaymentNumber int            `json:"paymentNumber"`
	TotalAmount   float64        `json:"totalAmount"`
	PaymentMethod *PaymentMethod `json:"paymentMethod,omitempty"`
}

type CreatePaymentRequest struct {
	TotalAmount   float64        `json:"totalAmount" validate:"gte=0"`
	PaymentMethod *PaymentMethod `json:"paymentMethod" validate:"required"`
}
