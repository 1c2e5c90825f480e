package models

type Invoice struct {
	InvoiceNumber int     `json:"invoiceNumber"`
	TotalAmount   float64 `json:"totalAmount"`
}

type CreateInvoiceRequest struct {
	TotalAmount float64 `json:"totalAmount" validate:"gte=0"`
}
