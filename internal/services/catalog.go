package service

import (
	"context"

	"github.com/candleworks/storefront/internal/client"
	"github.com/candleworks/storefront/internal/errors"
	"github.com/candleworks/storefront/internal/models"
	"github.com/go-playground/validator/v10"
)

// CatalogService serves product browsing plus the admin CRUD screens for
// products and manufacturers.
type CatalogService struct {
	products      client.ProductClient
	manufacturers client.ManufacturerClient
	validate      *validator.Validate
}

func NewCatalogService(products client.ProductClient, manufacturers client.ManufacturerClient) *CatalogService {
	return &CatalogService{
		products:      products,
		manufacturers: manufacturers,
		validate:      validator.New(),
	}
}

func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

func (s *CatalogService) Product(ctx context.Context, productNumber int) (*models.Product, error) {
	if productNumber <= 0 {
		return nil, errors.ValidationError("Product number is required")
	}

	return s.products.Read(ctx, productNumber)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	if err := s.validateInput(req); err != nil {
		return nil, err
	}

	return s.products.Create(ctx, req)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, req *models.UpdateProductRequest) (*models.Product, error) {
	if err := s.validateInput(req); err != nil {
		return nil, err
	}

	return s.products.Update(ctx, req)
}

func (s *CatalogService) Manufacturers(ctx context.Context) ([]models.Manufacturer, error) {
	return s.manufacturers.List(ctx)
}

func (s *CatalogService) CreateManufacturer(ctx context.Context, req *models.CreateManufacturerRequest) (*models.Manufacturer, error) {
	if err := s.validateInput(req); err != nil {
		return nil, err
	}

	return s.manufacturers.Create(ctx, req)
}

func (s *CatalogService) UpdateManufacturer(ctx context.Context, manufacturer *models.Manufacturer) (*models.Manufacturer, error) {
	if manufacturer == nil || manufacturer.ManufacturerNumber <= 0 {
		return nil, errors.ValidationError("Manufacturer number is required")
	}

	return s.manufacturers.Update(ctx, manufacturer)
}

func (s *CatalogService) validateInput(data any) error {
	err := s.validate.Struct(data)
	if err == nil {
		return nil
	}

	if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
		first := validationErrs[0]

		return errors.AddValidationError(first.Field(), first.Tag())
	}

	return errors.ValidationError("Invalid input").WithError(err)
}
