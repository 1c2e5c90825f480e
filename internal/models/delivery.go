package models

type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "Pending"
	DeliveryStatusInProgress DeliveryStatus = "InProgress"
	DeliveryStatusCompleted  DeliveryStatus = "Completed"
	DeliveryStatusCancelled  DeliveryStatus = "Cancelled"
)

type Delivery struct {
	DeliveryNumber int            `json:"deliveryNumber"`
	Status         DeliveryStatus `json:"status"`
}

type CreateDeliveryRequest struct {
	Status DeliveryStatus `json:"status" validate:"required,oneof=Pending InProgress Completed Cancelled"`
}
