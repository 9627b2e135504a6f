package trade

import "github.com/shopspring/decimal"

// LineItem is one product line on a sale or return
type LineItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// LineItems is stored as a single JSON column on the owning row
type LineItems []LineItem

// QuantityOf sums the quantity across lines for one product
func (items LineItems) QuantityOf(productID string) int {
	total := 0
	for _, item := range items {
		if item.ProductID == productID {
			total += item.Quantity
		}
	}
	return total
}

// RequiredQuantities aggregates per-product quantities in first-seen order
func (items LineItems) RequiredQuantities() ([]string, map[string]int) {
	order := make([]string, 0, len(items))
	required := make(map[string]int, len(items))
	for _, item := range items {
		if _, seen := required[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		required[item.ProductID] += item.Quantity
	}
	return order, required
}

// Total computes the sum of quantity*price across all lines
func (items LineItems) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
