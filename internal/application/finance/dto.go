package finance

import "github.com/shopspring/decimal"

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required,min=1,max=100"`
	Description string          `json:"description" binding:"max=200"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	WarehouseID string          `json:"warehouse_id" binding:"max=50"`
}

// UpdateExpenseRequest represents a partial update of an expense
type UpdateExpenseRequest struct {
	Category    *string          `json:"category" binding:"omitempty,min=1,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=200"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *string          `json:"date"`
	WarehouseID *string          `json:"warehouse_id" binding:"omitempty,max=50"`
}

// ImportResult summarizes a CSV import: how many rows landed and, per failed
// row, what went wrong. A partial import is not rolled back.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}
