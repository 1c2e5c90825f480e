package models

type ContactDetails struct {
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	Province    string `json:"province" validate:"required"`
	PostalCode  string `json:"postalCode" validate:"required"`
	Country     string `json:"country" validate:"required"`
}

type Store struct {
	StoreNumber    string          `json:"storeNumber"`
	StoreName      string          `json:"storeName"`
	ContactDetails *ContactDetails `json:"contactDetails,omitempty"`
}
