package inventory

import (
	"fmt"
	"time"
)

// CounterType identifies an independent invoice number sequence
type CounterType string

// Counter types, one sequence each
const (
	CounterSubscription  CounterType = "subscription"
	CounterSale          CounterType = "sale"
	CounterWholesaleSale CounterType = "wholesale_sale"
)

// Prefix returns the invoice code prefix for this counter type.
// Unknown types render as "N/A" but still consume a number.
func (t CounterType) Prefix() string {
	switch t {
	case CounterSubscription:
		return "SUB"
	case CounterSale:
		return "INV"
	case CounterWholesaleSale:
		return "WS"
	default:
		return "N/A"
	}
}

// InvoiceCode formats the invoice code for a sequence number, e.g. "INV-42"
func InvoiceCode(t CounterType, number int) string {
	return fmt.Sprintf("%s-%d", t.Prefix(), number)
}

// InvoiceCounter is the persisted state of one invoice sequence. Numbers
// start at 1, are strictly increasing and are never reused or reset.
type InvoiceCounter struct {
	CounterType   string    `gorm:"size:50;column:counter_type;primaryKey" json:"counterType"`
	CurrentNumber int       `gorm:"not null;default:0" json:"currentNumber"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName returns the database table name
func (InvoiceCounter) TableName() string {
	return "invoice_counters"
}

// NewInvoiceCounter creates a counter row at zero; the first NextNumber
// call advances it to 1.
func NewInvoiceCounter(t CounterType) *InvoiceCounter {
	return &InvoiceCounter{
		CounterType:   string(t),
		CurrentNumber: 0,
		UpdatedAt:     time.Now(),
	}
}
