package trade

import (
	"context"

	"github.com/mycofresh/backend/internal/domain/finance"
	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/mycofresh/backend/internal/domain/trade"
)

// TxRepositories bundles the repositories a trading transaction touches.
// Implementations hand out instances bound to the same transaction so stock
// movements, counter bumps and expense writes commit or roll back together.
type TxRepositories struct {
	Sales          trade.SaleRepository
	WholesaleSales trade.WholesaleSaleRepository
	Returns        trade.SalesReturnRepository
	Inventory      inventory.RecordRepository
	Counters       inventory.CounterRepository
	Expenses       finance.ExpenseRepository
}

// TransactionScope runs a function within a database transaction
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TxRepositories) error) error
}

// NoOpTransactionScope executes the function against fixed repositories
// without transaction semantics. Intended for tests.
type NoOpTransactionScope struct {
	Repos TxRepositories
}

// Execute runs the function directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TxRepositories) error) error {
	return fn(s.Repos)
}

// Ensure NoOpTransactionScope implements TransactionScope
var _ TransactionScope = (*NoOpTransactionScope)(nil)
