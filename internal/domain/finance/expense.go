package finance

import (
	"fmt"

	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// CategoryFreeSamples is the ledger category for expenses mirrored from
// free-sample sales.
const CategoryFreeSamples = "FREE_SAMPLES"

// FreeSampleDescription builds the legacy description that links a
// free-sample expense to its sale. Kept byte-for-byte stable because rows
// written before the sale_id column existed are still matched on it.
func FreeSampleDescription(invoiceNumber string) string {
	return fmt.Sprintf("Free sample - Invoice %s", invoiceNumber)
}

// Expense is a money-out ledger entry. SaleID is set only on free-sample
// rows and points back at the originating sale.
type Expense struct {
	shared.BaseEntity
	Category    string          `gorm:"size:100;not null" json:"category"`
	Description string          `gorm:"size:200" json:"description"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	Date        string          `gorm:"size:50;not null" json:"date"`
	WarehouseID string          `gorm:"size:50;column:warehouse_id" json:"warehouse_id"`
	SaleID      *string         `gorm:"size:50;column:sale_id;index" json:"saleId,omitempty"`
}

// TableName returns the database table name
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a plain expense entry
func NewExpense(category, description string, amount decimal.Decimal, date, warehouseID string) (*Expense, error) {
	if category == "" || date == "" {
		return nil, shared.NewValidationError("Expense category and date are required")
	}
	return &Expense{
		BaseEntity:  shared.NewBaseEntity("exp"),
		Category:    category,
		Description: description,
		Amount:      amount,
		Date:        date,
		WarehouseID: warehouseID,
	}, nil
}

// NewFreeSampleExpense creates the expense entry mirroring a free-sample
// sale: FREE_SAMPLES category, absolute sale amount, legacy description and
// the sale_id back-reference.
func NewFreeSampleExpense(saleID, invoiceNumber string, amount decimal.Decimal, date, warehouseID string) *Expense {
	return &Expense{
		BaseEntity:  shared.NewBaseEntity("expense"),
		Category:    CategoryFreeSamples,
		Description: FreeSampleDescription(invoiceNumber),
		Amount:      amount.Abs(),
		Date:        date,
		WarehouseID: warehouseID,
		SaleID:      &saleID,
	}
}
