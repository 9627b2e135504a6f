package catalog

import (
	"context"

	"github.com/mycofresh/backend/internal/domain/catalog"
	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/mycofresh/backend/internal/domain/shared"
)

// WarehouseService handles warehouse-related business operations
type WarehouseService struct {
	warehouseRepo catalog.WarehouseRepository
	inventoryRepo inventory.RecordRepository
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouseRepo catalog.WarehouseRepository, inventoryRepo inventory.RecordRepository) *WarehouseService {
	return &WarehouseService{
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
	}
}

// List returns all warehouses ordered by name
func (s *WarehouseService) List(ctx context.Context) ([]catalog.Warehouse, error) {
	return s.warehouseRepo.FindAll(ctx)
}

// Get returns one warehouse
func (s *WarehouseService) Get(ctx context.Context, id string) (*catalog.Warehouse, error) {
	return s.warehouseRepo.FindByID(ctx, id)
}

// Create creates a new warehouse
func (s *WarehouseService) Create(ctx context.Context, req CreateWarehouseRequest) (*catalog.Warehouse, error) {
	warehouse, err := catalog.NewWarehouse(req.Name)
	if err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// Update renames a warehouse
func (s *WarehouseService) Update(ctx context.Context, id string, req UpdateWarehouseRequest) (*catalog.Warehouse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	warehouse.Name = req.Name
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}

// Delete deletes a warehouse. A warehouse still holding stock cannot be
// deleted; the stock has to be moved or written off first.
func (s *WarehouseService) Delete(ctx context.Context, id string) error {
	if _, err := s.warehouseRepo.FindByID(ctx, id); err != nil {
		return err
	}

	stocked, err := s.inventoryRepo.StockedCount(ctx, id)
	if err != nil {
		return err
	}
	if stocked > 0 {
		return shared.NewDomainError("CONFLICT", "Cannot delete warehouse with stock")
	}

	return s.warehouseRepo.Delete(ctx, id)
}
