package trade

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineItemsRequiredQuantities(t *testing.T) {
	items := LineItems{
		{ProductID: "prod_1", Quantity: 2},
		{ProductID: "prod_2", Quantity: 1},
		{ProductID: "prod_1", Quantity: 3},
	}

	order, required := items.RequiredQuantities()

	assert.Equal(t, []string{"prod_1", "prod_2"}, order)
	assert.Equal(t, 5, required["prod_1"])
	assert.Equal(t, 1, required["prod_2"])
}

func TestLineItemsTotal(t *testing.T) {
	items := LineItems{
		{ProductID: "prod_1", Quantity: 2, Price: decimal.RequireFromString("150.50")},
		{ProductID: "prod_2", Quantity: 1, Price: decimal.RequireFromString("99.99")},
	}

	assert.True(t, items.Total().Equal(decimal.RequireFromString("400.99")))
}

func TestLineItemsQuantityOf(t *testing.T) {
	items := LineItems{
		{ProductID: "prod_1", Quantity: 2},
		{ProductID: "prod_1", Quantity: 4},
	}

	assert.Equal(t, 6, items.QuantityOf("prod_1"))
	assert.Equal(t, 0, items.QuantityOf("prod_9"))
}
