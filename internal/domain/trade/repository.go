package trade

import (
	"context"

	"github.com/google/uuid"
)

// SaleRepository defines persistence operations for retail sales
type SaleRepository interface {
	FindByID(ctx context.Context, id string) (*Sale, error)
	FindAll(ctx context.Context) ([]Sale, error)
	// FindByDateRange returns sales with from <= date <= to; dates are
	// YYYY-MM-DD strings so lexicographic order matches chronological order
	FindByDateRange(ctx context.Context, from, to string) ([]Sale, error)
	FindByDates(ctx context.Context, dates []string) ([]Sale, error)
	Save(ctx context.Context, sale *Sale) error
	Delete(ctx context.Context, id string) error
}

// WholesaleSaleRepository defines persistence operations for wholesale sales
type WholesaleSaleRepository interface {
	FindByID(ctx context.Context, id string) (*WholesaleSale, error)
	FindAll(ctx context.Context) ([]WholesaleSale, error)
	FindByDateRange(ctx context.Context, from, to string) ([]WholesaleSale, error)
	FindByDates(ctx context.Context, dates []string) ([]WholesaleSale, error)
	Save(ctx context.Context, sale *WholesaleSale) error
	Delete(ctx context.Context, id string) error
}

// SalesReturnRepository defines persistence operations for sales returns
type SalesReturnRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesReturn, error)
	FindAll(ctx context.Context) ([]SalesReturn, error)
	Save(ctx context.Context, ret *SalesReturn) error
}
