package persistence

import (
	"context"

	apptrade "github.com/mycofresh/backend/internal/application/trade"
	"gorm.io/gorm"
)

// GormTransactionScope implements trade.TransactionScope over gorm.DB
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn inside a database transaction. Every repository handed to
// fn is bound to that transaction, so a returned error rolls back all writes.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TxRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(apptrade.TxRepositories{
			Sales:          NewGormSaleRepository(tx),
			WholesaleSales: NewGormWholesaleSaleRepository(tx),
			Returns:        NewGormSalesReturnRepository(tx),
			Inventory:      NewGormInventoryRepository(tx),
			Counters:       NewGormInvoiceCounterRepository(tx),
			Expenses:       NewGormExpenseRepository(tx),
		})
	})
}

// Ensure GormTransactionScope implements TransactionScope
var _ apptrade.TransactionScope = (*GormTransactionScope)(nil)
