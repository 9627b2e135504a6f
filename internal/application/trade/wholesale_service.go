package trade

import (
	"context"
	"errors"

	"github.com/mycofresh/backend/internal/domain/catalog"
	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/mycofresh/backend/internal/domain/trade"
)

// WholesaleService handles wholesale sale operations. Mirrors the retail
// flow with a WS invoice sequence and no expense mirroring.
type WholesaleService struct {
	wholesaleRepo trade.WholesaleSaleRepository
	warehouseRepo catalog.WarehouseRepository
	scope         TransactionScope
}

// NewWholesaleService creates a new WholesaleService
func NewWholesaleService(wholesaleRepo trade.WholesaleSaleRepository, warehouseRepo catalog.WarehouseRepository, scope TransactionScope) *WholesaleService {
	return &WholesaleService{
		wholesaleRepo: wholesaleRepo,
		warehouseRepo: warehouseRepo,
		scope:         scope,
	}
}

// List returns all wholesale sales
func (s *WholesaleService) List(ctx context.Context) ([]trade.WholesaleSale, error) {
	return s.wholesaleRepo.FindAll(ctx)
}

// Get returns one wholesale sale
func (s *WholesaleService) Get(ctx context.Context, id string) (*trade.WholesaleSale, error) {
	sale, err := s.wholesaleRepo.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, shared.NewDomainError("NOT_FOUND", "Wholesale sale not found")
	}
	return sale, err
}

// Create records a wholesale sale, deducting stock and assigning a WS
// invoice number in one transaction
func (s *WholesaleService) Create(ctx context.Context, req CreateWholesaleSaleRequest) (*trade.WholesaleSale, error) {
	if req.WarehouseID == "" {
		return nil, shared.NewValidationError("Valid warehouseId is required")
	}
	if len(req.Items) == 0 {
		return nil, shared.NewValidationError("No products provided for sale")
	}
	if _, err := s.warehouseRepo.FindByID(ctx, req.WarehouseID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewValidationError("Valid warehouseId is required")
		}
		return nil, err
	}

	items := toLineItems(req.Items)
	total := items.Total()
	if req.TotalAmount != nil {
		total = *req.TotalAmount
	}
	status := req.Status
	if status == "" {
		status = defaultSaleStatus
	}

	sale := trade.NewWholesaleSale(req.ShopName, req.Contact, req.Address, items, total, req.Date, status, req.WarehouseID)

	err := s.scope.Execute(ctx, func(repos TxRepositories) error {
		if err := deductStock(ctx, repos.Inventory, items, req.WarehouseID); err != nil {
			return err
		}

		number, err := repos.Counters.NextNumber(ctx, inventory.CounterWholesaleSale)
		if err != nil {
			return err
		}
		sale.InvoiceNumber = inventory.InvoiceCode(inventory.CounterWholesaleSale, number)

		return repos.WholesaleSales.Save(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// Update merges the given fields into the wholesale sale without touching
// inventory
func (s *WholesaleService) Update(ctx context.Context, id string, req UpdateWholesaleSaleRequest) (*trade.WholesaleSale, error) {
	sale, err := s.wholesaleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Wholesale sale not found")
		}
		return nil, err
	}

	if req.ShopName != nil {
		sale.ShopName = *req.ShopName
	}
	if req.Contact != nil {
		sale.Contact = *req.Contact
	}
	if req.Address != nil {
		sale.Address = *req.Address
	}
	if req.Date != nil && *req.Date != "" {
		sale.Date = *req.Date
	}
	if req.Status != nil {
		sale.Status = *req.Status
	}
	if req.WarehouseID != nil {
		sale.WarehouseID = *req.WarehouseID
	}
	if req.Items != nil {
		sale.Items = toLineItems(*req.Items)
	}
	if req.TotalAmount != nil {
		sale.TotalAmount = *req.TotalAmount
	}

	if err := s.wholesaleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// Delete removes a wholesale sale and restores its stock at the sale's own
// warehouse
func (s *WholesaleService) Delete(ctx context.Context, id string) error {
	return s.scope.Execute(ctx, func(repos TxRepositories) error {
		sale, err := repos.WholesaleSales.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("NOT_FOUND", "Wholesale sale not found")
			}
			return err
		}
		if sale.WarehouseID == "" {
			return shared.NewDomainError("MISSING_WAREHOUSE", "Sale has no warehouseId set")
		}

		for _, item := range sale.Items {
			if err := repos.Inventory.AdjustQuantity(ctx, item.ProductID, sale.WarehouseID, item.Quantity); err != nil {
				return err
			}
		}

		return repos.WholesaleSales.Delete(ctx, sale.ID)
	})
}
