package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterTypePrefix(t *testing.T) {
	assert.Equal(t, "SUB", CounterSubscription.Prefix())
	assert.Equal(t, "INV", CounterSale.Prefix())
	assert.Equal(t, "WS", CounterWholesaleSale.Prefix())
	assert.Equal(t, "N/A", CounterType("purchase").Prefix())
}

func TestInvoiceCode(t *testing.T) {
	assert.Equal(t, "INV-1", InvoiceCode(CounterSale, 1))
	assert.Equal(t, "SUB-42", InvoiceCode(CounterSubscription, 42))
	assert.Equal(t, "WS-7", InvoiceCode(CounterWholesaleSale, 7))
	assert.Equal(t, "N/A-3", InvoiceCode(CounterType("bogus"), 3))
}
