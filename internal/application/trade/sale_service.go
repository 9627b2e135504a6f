package trade

import (
	"context"
	"errors"

	"github.com/mycofresh/backend/internal/domain/catalog"
	"github.com/mycofresh/backend/internal/domain/finance"
	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/mycofresh/backend/internal/domain/trade"
)

// defaultSaleStatus is assumed when the caller sends none
const defaultSaleStatus = "Paid"

// SaleService handles retail sale operations. Stock movement, invoice
// sequencing and the free-sample expense mirror all happen inside one
// transaction per operation.
type SaleService struct {
	saleRepo      trade.SaleRepository
	warehouseRepo catalog.WarehouseRepository
	scope         TransactionScope
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo trade.SaleRepository, warehouseRepo catalog.WarehouseRepository, scope TransactionScope) *SaleService {
	return &SaleService{
		saleRepo:      saleRepo,
		warehouseRepo: warehouseRepo,
		scope:         scope,
	}
}

// List returns all retail sales
func (s *SaleService) List(ctx context.Context) ([]trade.Sale, error) {
	return s.saleRepo.FindAll(ctx)
}

// Get returns one retail sale
func (s *SaleService) Get(ctx context.Context, id string) (*trade.Sale, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, shared.NewDomainError("NOT_FOUND", "Sale not found")
	}
	return sale, err
}

// Create records a retail sale: deducts stock at the given warehouse, pulls
// the next INV number and, for free samples, mirrors the amount into the
// expense ledger. All of it commits or rolls back together.
func (s *SaleService) Create(ctx context.Context, req CreateSaleRequest) (*trade.Sale, error) {
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

	sale := trade.NewSale(req.CustomerName, items, total, req.Date, status, req.WarehouseID)

	err := s.scope.Execute(ctx, func(repos TxRepositories) error {
		if err := deductStock(ctx, repos.Inventory, items, req.WarehouseID); err != nil {
			return err
		}

		number, err := repos.Counters.NextNumber(ctx, inventory.CounterSale)
		if err != nil {
			return err
		}
		sale.InvoiceNumber = inventory.InvoiceCode(inventory.CounterSale, number)

		if err := repos.Sales.Save(ctx, sale); err != nil {
			return err
		}

		if sale.IsFree() {
			expense := finance.NewFreeSampleExpense(sale.ID, sale.InvoiceNumber, sale.TotalAmount, sale.Date, sale.WarehouseID)
			return repos.Expenses.Save(ctx, expense)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// Update merges the given fields into the sale and keeps the free-sample
// expense in sync with the status. Inventory is never touched on update.
func (s *SaleService) Update(ctx context.Context, id string, req UpdateSaleRequest) (*trade.Sale, error) {
	var updated *trade.Sale
	err := s.scope.Execute(ctx, func(repos TxRepositories) error {
		sale, err := repos.Sales.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("NOT_FOUND", "Sale not found")
			}
			return err
		}

		if req.CustomerName != nil {
			sale.CustomerName = *req.CustomerName
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

		if err := repos.Sales.Save(ctx, sale); err != nil {
			return err
		}
		if err := syncFreeSampleExpense(ctx, repos.Expenses, sale); err != nil {
			return err
		}

		updated = sale
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a sale, restores its stock at the sale's own warehouse and
// drops the linked free-sample expense if one exists
func (s *SaleService) Delete(ctx context.Context, id string) error {
	return s.scope.Execute(ctx, func(repos TxRepositories) error {
		sale, err := repos.Sales.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("NOT_FOUND", "Sale not found")
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

		expense, err := repos.Expenses.FindFreeSampleForSale(ctx, sale.ID, sale.InvoiceNumber)
		if err == nil {
			if err := repos.Expenses.Delete(ctx, expense.ID); err != nil {
				return err
			}
		} else if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		return repos.Sales.Delete(ctx, sale.ID)
	})
}

// deductStock verifies availability for the aggregated quantities first so
// the caller gets the first short product reported, then applies the
// conditional decrements.
func deductStock(ctx context.Context, records inventory.RecordRepository, items trade.LineItems, warehouseID string) error {
	order, required := items.RequiredQuantities()
	for _, productID := range order {
		available, err := records.QuantityOf(ctx, productID, warehouseID)
		if err != nil {
			return err
		}
		if required[productID] > available {
			return shared.NewInsufficientStockError(productID, required[productID], available)
		}
	}
	for _, productID := range order {
		if err := records.AdjustQuantity(ctx, productID, warehouseID, -required[productID]); err != nil {
			return err
		}
	}
	return nil
}

// syncFreeSampleExpense makes the expense ledger agree with the sale's
// status: a Free sale owns exactly one FREE_SAMPLES row, anything else none.
func syncFreeSampleExpense(ctx context.Context, expenses finance.ExpenseRepository, sale *trade.Sale) error {
	expense, err := expenses.FindFreeSampleForSale(ctx, sale.ID, sale.InvoiceNumber)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}
	found := err == nil

	if sale.IsFree() {
		if found {
			expense.Amount = sale.TotalAmount.Abs()
			expense.Date = sale.Date
			expense.WarehouseID = sale.WarehouseID
			if expense.SaleID == nil {
				saleID := sale.ID
				expense.SaleID = &saleID
			}
			return expenses.Save(ctx, expense)
		}
		return expenses.Save(ctx, finance.NewFreeSampleExpense(sale.ID, sale.InvoiceNumber, sale.TotalAmount, sale.Date, sale.WarehouseID))
	}

	if found {
		return expenses.Delete(ctx, expense.ID)
	}
	return nil
}
