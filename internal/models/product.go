package models

type Manufacturer struct {
	ManufacturerNumber int    `json:"manufacturerNumber"`
	Name               string `json:"name"`
	Location           string `json:"location,omitempty"`
}

type Product struct {
	ProductNumber int           `json:"productNumber"`
	Name          string        `json:"name"`
	Price         float64       `json:"price"`
	StockQuantity int           `json:"stockQuantity"`
	Scent         string        `json:"scent,omitempty"`
	Color         string        `json:"color,omitempty"`
	Size          string        `json:"size,omitempty"`
	Manufacturer  *Manufacturer `json:"manufacturer,omitempty"`
}

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=200"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
	Scent         string  `json:"scent,omitempty"`
	Color         string  `json:"color,omitempty"`
	Size          string  `json:"size,omitempty"`
}

type UpdateProductRequest struct {
	ProductNumber int      `json:"productNumber" validate:"required"`
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	StockQuantity *int     `json:"stockQuantity,omitempty" validate:"omitempty,gte=0"`
	Scent         *string  `json:"scent,omitempty"`
	Color         *string  `json:"color,omitempty"`
	Size          *string  `json:"size,omitempty"`
}

type CreateManufacturerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=200"`
	Location string `json:"location,omitempty"`
}
