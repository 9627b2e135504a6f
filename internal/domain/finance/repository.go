package finance

import "context"

// ExpenseRepository defines persistence operations for expenses
type ExpenseRepository interface {
	FindByID(ctx context.Context, id string) (*Expense, error)
	FindAll(ctx context.Context) ([]Expense, error)
	FindByDateRange(ctx context.Context, from, to string) ([]Expense, error)
	// FindFreeSampleForSale locates the expense mirroring a free-sample sale,
	// preferring the sale_id back-reference and falling back to the legacy
	// description match for rows created before the column existed.
	// Returns shared.ErrNotFound when no linked expense exists.
	FindFreeSampleForSale(ctx context.Context, saleID, invoiceNumber string) (*Expense, error)
	Save(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id string) error
}
