package report_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mycofresh/backend/internal/application/report"
	"github.com/mycofresh/backend/internal/domain/catalog"
	"github.com/mycofresh/backend/internal/domain/finance"
	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/mycofresh/backend/internal/domain/subscription"
	"github.com/mycofresh/backend/internal/domain/trade"
	"github.com/mycofresh/backend/internal/infrastructure/cache"
	"github.com/mycofresh/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Monday, mid-August
var fixedNow = time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

type reportFixture struct {
	db      *gorm.DB
	service *report.Service
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalog.Product{},
		&catalog.Warehouse{},
		&inventory.Record{},
		&inventory.InvoiceCounter{},
		&subscription.Subscription{},
		&trade.Sale{},
		&trade.WholesaleSale{},
		&trade.SalesReturn{},
		&finance.Expense{},
	))

	svc := report.NewService(
		persistence.NewGormSaleRepository(db),
		persistence.NewGormWholesaleSaleRepository(db),
		persistence.NewGormExpenseRepository(db),
		persistence.NewGormSubscriptionRepository(db),
		cache.NewNoopReportCache(),
		time.Minute,
		func() time.Time { return fixedNow },
		time.UTC,
	)
	return &reportFixture{db: db, service: svc}
}

func (f *reportFixture) addSale(t *testing.T, name, date, status string, amount int64) *trade.Sale {
	t.Helper()
	sale := trade.NewSale(name, trade.LineItems{
		{ProductID: "prod_1", Name: "Oyster Mushrooms", Quantity: 2, Price: decimal.NewFromInt(amount / 2)},
	}, decimal.NewFromInt(amount), date, status, "wh_1")
	sale.InvoiceNumber = shared.NewID("INVT")
	require.NoError(t, f.db.Create(sale).Error)
	return sale
}

func (f *reportFixture) addWholesale(t *testing.T, shop, contact, date, status string, amount int64) *trade.WholesaleSale {
	t.Helper()
	sale := trade.NewWholesaleSale(shop, contact, "Market Road", trade.LineItems{
		{ProductID: "prod_1", Name: "Oyster Mushrooms", Quantity: 5, Price: decimal.NewFromInt(amount / 5)},
	}, decimal.NewFromInt(amount), date, status, "wh_1")
	sale.InvoiceNumber = shared.NewID("WST")
	require.NoError(t, f.db.Create(sale).Error)
	return sale
}

func (f *reportFixture) addExpense(t *testing.T, category, date string, amount int64) {
	t.Helper()
	expense, err := finance.NewExpense(category, "", decimal.NewFromInt(amount), date, "wh_1")
	require.NoError(t, err)
	require.NoError(t, f.db.Create(expense).Error)
}

func (f *reportFixture) addSubscription(t *testing.T, name, phone, status, preferredDay string, boxes int) *subscription.Subscription {
	t.Helper()
	sub := &subscription.Subscription{
		BaseEntity:           shared.NewBaseEntity("sub"),
		InvoiceNumber:        shared.NewID("SUBT"),
		Name:                 name,
		Email:                "test@example.com",
		Phone:                phone,
		Plan:                 "Weekly Box",
		Status:               status,
		StartDate:            "2026-08-01",
		PreferredDeliveryDay: preferredDay,
		BoxesPerMonth:        boxes,
	}
	require.NoError(t, f.db.Create(sub).Error)
	return sub
}

func TestService_DashboardStats(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture(t)

	f.addSale(t, "Asha", "2026-08-05", "Paid", 750)
	f.addSale(t, "Ravi", "2026-08-05", "Paid", 250)
	f.addSale(t, "Meena", "2026-08-07", "Free", 500)
	f.addWholesale(t, "Green Basket", "98765", "2026-08-05", "Paid", 2000)
	// Last month, must not count
	f.addSale(t, "Asha", "2026-07-20", "Paid", 9000)

	f.addExpense(t, "RAW_MATERIAL", "2026-08-03", 1200)
	f.addExpense(t, "RAW_MATERIAL", "2026-08-09", 300)
	f.addExpense(t, "UTILITIES", "2026-08-04", 400)
	// Mirror row for the free sale; kept out of the normal split
	f.addExpense(t, finance.CategoryFreeSamples, "2026-08-07", 500)

	f.addSubscription(t, "Ravi", "111", subscription.StatusActive, "Monday", 4)
	f.addSubscription(t, "Old Customer", "222", "Paused", "Monday", 4)

	stats, err := f.service.DashboardStats(ctx)
	require.NoError(t, err)

	assert.True(t, stats.CurrentMonthRetailSales.Equal(decimal.NewFromInt(1000)))
	assert.True(t, stats.CurrentMonthWholesaleSales.Equal(decimal.NewFromInt(2000)))
	assert.True(t, stats.CurrentMonthSales.Equal(decimal.NewFromInt(3000)))
	assert.True(t, stats.FreeSampleAsExpense.Equal(decimal.NewFromInt(500)))
	assert.True(t, stats.CurrentMonthNormalExpenses.Equal(decimal.NewFromInt(1900)))
	assert.True(t, stats.CurrentMonthExpenses.Equal(decimal.NewFromInt(2400)))
	assert.True(t, stats.CurrentMonthProfit.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, int64(1), stats.ActiveSubscriptions)

	require.Len(t, stats.SalesByDay, 1)
	day := stats.SalesByDay[0]
	assert.Equal(t, 5, day.Day)
	assert.True(t, day.Sales.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, 2, day.RetailOrders)
	assert.Equal(t, 1, day.WholesaleOrders)

	require.Len(t, stats.ExpenseBreakdown, 2)
	assert.Equal(t, "RAW_MATERIAL", stats.ExpenseBreakdown[0].Name)
	assert.True(t, stats.ExpenseBreakdown[0].Value.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "UTILITIES", stats.ExpenseBreakdown[1].Name)
	assert.True(t, stats.ExpenseBreakdown[1].Value.Equal(decimal.NewFromInt(400)))
}

func TestService_Customers(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture(t)

	f.addSubscription(t, "Ravi", "111", subscription.StatusActive, "Monday", 4)
	f.addSale(t, "Ravi", "2026-08-05", "Paid", 750)
	f.addSale(t, "ravi", "2026-08-08", "Paid", 250)
	f.addWholesale(t, "Green Basket", "98765", "2026-08-06", "Paid", 2000)

	customers, err := f.service.Customers(ctx)
	require.NoError(t, err)

	// Subscription Ravi keys on phone, retail Ravi on the retail
	// placeholder, so they stay separate rows; the two retail sales merge
	require.Len(t, customers, 3)

	byName := map[string]report.CustomerSummary{}
	for _, c := range customers {
		byName[strings.ToLower(c.Name)+"/"+c.Contact.Phone] = c
	}

	subRavi := byName["ravi/111"]
	assert.Equal(t, []string{"Subscription"}, subRavi.Types)
	assert.True(t, subRavi.TotalSpent.IsZero())

	retailRavi := byName["ravi/"]
	assert.Equal(t, []string{"Retail"}, retailRavi.Types)
	assert.True(t, retailRavi.TotalSpent.Equal(decimal.NewFromInt(1000)))
	require.Len(t, retailRavi.TransactionHistory, 2)
	assert.Equal(t, "2026-08-08", retailRavi.TransactionHistory[0].Date)
	assert.Equal(t, "2026-08-05", retailRavi.FirstActivityDate)
	assert.Equal(t, "2026-08-08", retailRavi.LastActivityDate)

	shop := byName["green basket/98765"]
	assert.Equal(t, []string{"Wholesale"}, shop.Types)
	assert.True(t, shop.TotalSpent.Equal(decimal.NewFromInt(2000)))
}

func TestService_StockPrep(t *testing.T) {
	ctx := context.Background()
	f := newReportFixture(t)

	// fixedNow is Monday 2026-08-10; Tuesday is 2026-08-11
	f.addSubscription(t, "Ravi", "111", subscription.StatusActive, "Monday", 5)
	f.addSubscription(t, "Meena", "333", subscription.StatusActive, "Tuesday", 4)
	f.addSubscription(t, "Paused Guy", "444", "Paused", "Monday", 4)

	f.addSale(t, "Asha", "2026-08-10", "Paid", 500)
	f.addWholesale(t, "Green Basket", "98765", "2026-08-11", "Paid", 2000)
	// Out of the two-day window
	f.addSale(t, "Later", "2026-08-12", "Paid", 500)

	prep, err := f.service.StockPrep(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-10", prep.DateRange.Today)
	assert.Equal(t, "2026-08-11", prep.DateRange.Tomorrow)
	assert.Equal(t, "Monday", prep.Today.Day)
	assert.Equal(t, "Tuesday", prep.Tomorrow.Day)

	assert.Equal(t, 1, prep.Today.Breakdown.Subscriptions)
	assert.Equal(t, 1, prep.Today.Breakdown.Retail)
	assert.Equal(t, 0, prep.Today.Breakdown.Wholesale)
	// 5 boxes over 5 Mondays puts 1 box on today, plus 2 retail units
	assert.Equal(t, 3, prep.Today.TotalBoxes)

	assert.Equal(t, 1, prep.Tomorrow.Breakdown.Subscriptions)
	assert.Equal(t, 0, prep.Tomorrow.Breakdown.Retail)
	assert.Equal(t, 1, prep.Tomorrow.Breakdown.Wholesale)
	// 4 boxes over 5 Tuesdays puts 1 box on tomorrow, plus 5 wholesale units
	assert.Equal(t, 6, prep.Tomorrow.TotalBoxes)
}
