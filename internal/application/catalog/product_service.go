package catalog

import (
	"context"
	"errors"

	"github.com/mycofresh/backend/internal/domain/catalog"
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List returns all products ordered by name
func (s *ProductService) List(ctx context.Context) ([]catalog.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// Get returns one product
func (s *ProductService) Get(ctx context.Context, id string) (*catalog.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	// Names are the product's natural key in the catalog
	_, err := s.productRepo.FindByName(ctx, req.Name)
	if err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this name already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	price := decimal.Zero
	if req.DefaultPrice != nil {
		price = *req.DefaultPrice
	}

	product, err := catalog.NewProduct(req.Name, price, req.Unit)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update updates an existing product
func (s *ProductService) Update(ctx context.Context, id string, req UpdateProductRequest) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != product.Name {
		existing, err := s.productRepo.FindByName(ctx, *req.Name)
		if err == nil && existing.ID != product.ID {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this name already exists")
		}
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		product.Name = *req.Name
	}
	if req.DefaultPrice != nil {
		product.DefaultPrice = *req.DefaultPrice
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}
