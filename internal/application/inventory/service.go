package inventory

import (
	"context"
	"errors"

	"github.com/mycofresh/backend/internal/domain/catalog"
	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/mycofresh/backend/internal/domain/shared"
)

// Service handles inventory-related business operations
type Service struct {
	recordRepo    inventory.RecordRepository
	productRepo   catalog.ProductRepository
	warehouseRepo catalog.WarehouseRepository
}

// NewService creates a new inventory Service
func NewService(
	recordRepo inventory.RecordRepository,
	productRepo catalog.ProductRepository,
	warehouseRepo catalog.WarehouseRepository,
) *Service {
	return &Service{
		recordRepo:    recordRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// List returns all inventory records enriched with product and warehouse
// names. Records referencing deleted catalog entries keep their raw IDs.
func (s *Service) List(ctx context.Context) ([]RecordResponse, error) {
	records, err := s.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	warehouses, err := s.warehouseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	productNames := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	warehouseNames := make(map[string]string, len(warehouses))
	for _, w := range warehouses {
		warehouseNames[w.ID] = w.Name
	}

	responses := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		productName := productNames[r.ProductID]
		if productName == "" {
			productName = r.ProductID
		}
		warehouseName := warehouseNames[r.WarehouseID]
		if warehouseName == "" {
			warehouseName = r.WarehouseID
		}
		responses = append(responses, RecordResponse{
			ID:            r.ID,
			ProductID:     r.ProductID,
			ProductName:   productName,
			WarehouseID:   r.WarehouseID,
			WarehouseName: warehouseName,
			Quantity:      r.Quantity,
			UpdatedAt:     r.UpdatedAt,
		})
	}
	return responses, nil
}

// ReceiveStock books a receipt of goods into a warehouse
func (s *Service) ReceiveStock(ctx context.Context, req ReceiveStockRequest) error {
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewValidationError("Valid productId is required")
		}
		return err
	}
	if _, err := s.warehouseRepo.FindByID(ctx, req.WarehouseID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewValidationError("Valid warehouseId is required")
		}
		return err
	}

	return s.recordRepo.AdjustQuantity(ctx, req.ProductID, req.WarehouseID, req.Quantity)
}

// UpdateRecord overrides the on-hand quantity of a record. Used for manual
// stock corrections after a count.
func (s *Service) UpdateRecord(ctx context.Context, id string, req UpdateRecordRequest) (*inventory.Record, error) {
	record, err := s.recordRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	record.Quantity = *req.Quantity
	if err := s.recordRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteRecord removes an inventory record
func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	return s.recordRepo.Delete(ctx, id)
}

// StockByWarehouse returns the availability of every stocked product at a
// warehouse
func (s *Service) StockByWarehouse(ctx context.Context, warehouseID string) ([]StockLevel, error) {
	if _, err := s.warehouseRepo.FindByID(ctx, warehouseID); err != nil {
		return nil, err
	}

	records, err := s.recordRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	levels := make([]StockLevel, 0)
	for _, r := range records {
		if r.WarehouseID == warehouseID {
			levels = append(levels, StockLevel{ProductID: r.ProductID, Quantity: r.Quantity})
		}
	}
	return levels, nil
}
