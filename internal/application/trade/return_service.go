package trade

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/mycofresh/backend/internal/domain/trade"
)

// ReturnService records sales returns and puts the returned goods back into
// stock. With EnforceQuantities set, a return may not exceed what the
// original sale shipped.
type ReturnService struct {
	returnRepo        trade.SalesReturnRepository
	scope             TransactionScope
	enforceQuantities bool
}

// NewReturnService creates a new ReturnService
func NewReturnService(returnRepo trade.SalesReturnRepository, scope TransactionScope, enforceQuantities bool) *ReturnService {
	return &ReturnService{
		returnRepo:        returnRepo,
		scope:             scope,
		enforceQuantities: enforceQuantities,
	}
}

// List returns all sales returns, newest first
func (s *ReturnService) List(ctx context.Context) ([]trade.SalesReturn, error) {
	return s.returnRepo.FindAll(ctx)
}

// Get returns one sales return
func (s *ReturnService) Get(ctx context.Context, id uuid.UUID) (*trade.SalesReturn, error) {
	return s.returnRepo.FindByID(ctx, id)
}

// Create records a return against a retail or wholesale sale and restocks
// the returned quantities. The warehouse is the one named on the request,
// falling back to the sale's own; with neither set the return is rejected.
func (s *ReturnService) Create(ctx context.Context, req CreateReturnRequest) (*trade.SalesReturn, error) {
	items := toLineItems(req.Items)

	var created *trade.SalesReturn
	err := s.scope.Execute(ctx, func(repos TxRepositories) error {
		saleType, saleItems, saleWarehouse, err := resolveSale(ctx, repos, req.SaleID)
		if err != nil {
			return err
		}

		if s.enforceQuantities {
			for _, item := range items {
				sold := saleItems.QuantityOf(item.ProductID)
				if item.Quantity > sold {
					return shared.NewValidationError(
						fmt.Sprintf("Returned quantity for %s exceeds quantity sold. Returned: %d, Sold: %d",
							item.ProductID, item.Quantity, sold))
				}
			}
		}

		warehouseID := req.WarehouseID
		if warehouseID == "" {
			warehouseID = saleWarehouse
		}
		if warehouseID == "" {
			return shared.NewDomainError("MISSING_WAREHOUSE", "No warehouse available to restock this return")
		}

		for _, item := range items {
			if err := repos.Inventory.AdjustQuantity(ctx, item.ProductID, warehouseID, item.Quantity); err != nil {
				return err
			}
		}

		ret := trade.NewSalesReturn(req.SaleID, saleType, items, req.Date, warehouseID, req.Reason)
		if err := repos.Returns.Save(ctx, ret); err != nil {
			return err
		}
		created = ret
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// resolveSale looks the sale up in the retail table first, then wholesale
func resolveSale(ctx context.Context, repos TxRepositories, saleID string) (string, trade.LineItems, string, error) {
	sale, err := repos.Sales.FindByID(ctx, saleID)
	if err == nil {
		return trade.SaleTypeRetail, sale.Items, sale.WarehouseID, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return "", nil, "", err
	}

	wholesale, err := repos.WholesaleSales.FindByID(ctx, saleID)
	if err == nil {
		return trade.SaleTypeWholesale, wholesale.Items, wholesale.WarehouseID, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return "", nil, "", err
	}
	return "", nil, "", shared.NewDomainError("NOT_FOUND", "Sale not found")
}
