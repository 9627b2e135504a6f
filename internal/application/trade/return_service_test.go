package trade_test

import (
	"context"
	"testing"

	apptrade "github.com/mycofresh/backend/internal/application/trade"
	"github.com/mycofresh/backend/internal/domain/trade"
	"github.com/mycofresh/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("restocks at the return's warehouse and records the sale type", func(t *testing.T) {
		f := newTradeFixture(t)
		f.receive(t, 5)

		sale, err := f.sales.Create(ctx, f.saleRequest(3, "Paid"))
		require.NoError(t, err)
		assert.Equal(t, 2, f.stock(t))

		ret, err := f.returns.Create(ctx, apptrade.CreateReturnRequest{
			SaleID: sale.ID,
			Items: []apptrade.LineItemRequest{
				{ProductID: f.product.ID, Quantity: 2},
			},
			Date:        "2026-08-12",
			WarehouseID: f.warehouse.ID,
			Reason:      "Damaged in transit",
		})
		require.NoError(t, err)

		assert.Equal(t, trade.SaleTypeRetail, ret.SaleType)
		assert.Equal(t, f.warehouse.ID, ret.WarehouseID)
		assert.Equal(t, 4, f.stock(t))
	})

	t.Run("falls back to the sale's warehouse", func(t *testing.T) {
		f := newTradeFixture(t)
		f.receive(t, 5)

		sale, err := f.sales.Create(ctx, f.saleRequest(3, "Paid"))
		require.NoError(t, err)

		ret, err := f.returns.Create(ctx, apptrade.CreateReturnRequest{
			SaleID: sale.ID,
			Items: []apptrade.LineItemRequest{
				{ProductID: f.product.ID, Quantity: 1},
			},
			Date: "2026-08-12",
		})
		require.NoError(t, err)

		assert.Equal(t, f.warehouse.ID, ret.WarehouseID)
		assert.Equal(t, 3, f.stock(t))
	})

	t.Run("resolves wholesale sales too", func(t *testing.T) {
		f := newTradeFixture(t)
		f.receive(t, 10)

		sale, err := f.wholesales.Create(ctx, apptrade.CreateWholesaleSaleRequest{
			ShopName: "Green Basket",
			Items: []apptrade.LineItemRequest{
				{ProductID: f.product.ID, Quantity: 4, Price: decimal.NewFromInt(200)},
			},
			Date:        "2026-08-10",
			WarehouseID: f.warehouse.ID,
		})
		require.NoError(t, err)

		ret, err := f.returns.Create(ctx, apptrade.CreateReturnRequest{
			SaleID: sale.ID,
			Items: []apptrade.LineItemRequest{
				{ProductID: f.product.ID, Quantity: 4},
			},
			Date: "2026-08-12",
		})
		require.NoError(t, err)

		assert.Equal(t, trade.SaleTypeWholesale, ret.SaleType)
		assert.Equal(t, 10, f.stock(t))
	})

	t.Run("rejects when no warehouse can be resolved", func(t *testing.T) {
		f := newTradeFixture(t)

		sale := trade.NewSale("Asha", trade.LineItems{
			{ProductID: f.product.ID, Quantity: 1, Price: decimal.NewFromInt(250)},
		}, decimal.NewFromInt(250), "2026-08-10", "Paid", "")
		sale.InvoiceNumber = "INV-77"
		require.NoError(t, f.db.Create(sale).Error)

		_, err := f.returns.Create(ctx, apptrade.CreateReturnRequest{
			SaleID: sale.ID,
			Items: []apptrade.LineItemRequest{
				{ProductID: f.product.ID, Quantity: 1},
			},
			Date: "2026-08-12",
		})
		require.Error(t, err)
		assert.Equal(t, "No warehouse available to restock this return", err.Error())
		assert.Equal(t, 0, f.stock(t))
	})

	t.Run("unknown sale", func(t *testing.T) {
		f := newTradeFixture(t)

		_, err := f.returns.Create(ctx, apptrade.CreateReturnRequest{
			SaleID: "sale_missing",
			Items: []apptrade.LineItemRequest{
				{ProductID: f.product.ID, Quantity: 1},
			},
			Date: "2026-08-12",
		})
		require.Error(t, err)
		assert.Equal(t, "Sale not found", err.Error())
	})

	t.Run("enforced quantities reject over-returns", func(t *testing.T) {
		f := newTradeFixture(t)
		f.receive(t, 5)

		sale, err := f.sales.Create(ctx, f.saleRequest(2, "Paid"))
		require.NoError(t, err)

		strict := apptrade.NewReturnService(
			persistence.NewGormSalesReturnRepository(f.db),
			persistence.NewGormTransactionScope(f.db),
			true,
		)

		_, err = strict.Create(ctx, apptrade.CreateReturnRequest{
			SaleID: sale.ID,
			Items: []apptrade.LineItemRequest{
				{ProductID: f.product.ID, Quantity: 3},
			},
			Date: "2026-08-12",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds quantity sold")
		assert.Equal(t, 3, f.stock(t))
	})
}
