package inventory

import "context"

// RecordRepository defines persistence operations for inventory records.
//
// AdjustQuantity is the authoritative stock mutation: it applies the delta
// as a single conditional update so that concurrent decrements can never
// drive a quantity below zero. A failed decrement leaves the stored value
// untouched and returns an INSUFFICIENT_STOCK domain error.
type RecordRepository interface {
	FindByID(ctx context.Context, id string) (*Record, error)
	FindAll(ctx context.Context) ([]Record, error)
	FindByProductAndWarehouse(ctx context.Context, productID, warehouseID string) (*Record, error)
	// QuantityOf returns the on-hand quantity, treating a missing record as zero
	QuantityOf(ctx context.Context, productID, warehouseID string) (int, error)
	AdjustQuantity(ctx context.Context, productID, warehouseID string, delta int) error
	// StockedCount counts records with positive quantity at a warehouse
	StockedCount(ctx context.Context, warehouseID string) (int64, error)
	Save(ctx context.Context, record *Record) error
	Delete(ctx context.Context, id string) error
}

// CounterRepository defines persistence operations for invoice counters.
// NextNumber must be atomic: concurrent callers for the same type receive
// distinct, contiguous numbers.
type CounterRepository interface {
	NextNumber(ctx context.Context, t CounterType) (int, error)
}
