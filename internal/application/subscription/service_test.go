package subscription_test

import (
	"context"
	"testing"
	"time"

	appsub "github.com/mycofresh/backend/internal/application/subscription"
	"github.com/mycofresh/backend/internal/domain/catalog"
	"github.com/mycofresh/backend/internal/domain/finance"
	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/mycofresh/backend/internal/domain/subscription"
	"github.com/mycofresh/backend/internal/domain/trade"
	"github.com/mycofresh/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// A Monday, so weekday math in the schedule assertions is easy to follow
var fixedNow = time.Date(2026, 8, 3, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T) *appsub.Service {
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

	return appsub.NewService(
		persistence.NewGormSubscriptionRepository(db),
		persistence.NewGormInvoiceCounterRepository(db),
		func() time.Time { return fixedNow },
		time.UTC,
	)
}

func createRequest() appsub.CreateSubscriptionRequest {
	return appsub.CreateSubscriptionRequest{
		Name:                 "Ravi",
		Email:                "ravi@example.com",
		Phone:                "9876501234",
		Address:              "12 Lake View Road",
		FlatNo:               "3B",
		Plan:                 "Weekly Box",
		StartDate:            "2026-08-01",
		PreferredDeliveryDay: "Monday",
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns SUB invoice numbers in sequence", func(t *testing.T) {
		svc := newService(t)

		first, err := svc.Create(ctx, createRequest())
		require.NoError(t, err)
		second, err := svc.Create(ctx, createRequest())
		require.NoError(t, err)

		assert.Equal(t, "SUB-1", first.InvoiceNumber)
		assert.Equal(t, "SUB-2", second.InvoiceNumber)
	})

	t.Run("applies defaults", func(t *testing.T) {
		svc := newService(t)

		req := createRequest()
		req.PreferredDeliveryDay = ""

		sub, err := svc.Create(ctx, req)
		require.NoError(t, err)

		assert.Equal(t, subscription.StatusActive, sub.Status)
		assert.Equal(t, "Any Day", sub.PreferredDeliveryDay)
		assert.Equal(t, 1, sub.BoxesPerMonth)
		assert.Empty(t, sub.DeliverySchedule)
	})

	t.Run("computes the delivery schedule from the preferred day", func(t *testing.T) {
		svc := newService(t)

		boxes := 10
		req := createRequest()
		req.BoxesPerMonth = &boxes

		sub, err := svc.Create(ctx, req)
		require.NoError(t, err)

		// 5 Mondays in the 31-day window starting Monday 2026-08-03
		require.Len(t, sub.DeliverySchedule, 5)
		total := 0
		for _, d := range sub.DeliverySchedule {
			assert.Equal(t, "Monday", d.Day)
			total += d.Boxes
		}
		assert.Equal(t, 10, total)
		assert.Equal(t, "2026-08-03", sub.DeliverySchedule[0].Date)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	sub, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	t.Run("keeps the invoice number across updates", func(t *testing.T) {
		day := "Friday"
		updated, err := svc.Update(ctx, sub.ID, appsub.UpdateSubscriptionRequest{
			PreferredDeliveryDay: &day,
		})
		require.NoError(t, err)

		assert.Equal(t, sub.InvoiceNumber, updated.InvoiceNumber)
		assert.Equal(t, "Friday", updated.PreferredDeliveryDay)
		for _, d := range updated.DeliverySchedule {
			assert.Equal(t, "Friday", d.Day)
		}
	})

	t.Run("pausing removes the customer from active counts", func(t *testing.T) {
		paused := "Paused"
		updated, err := svc.Update(ctx, sub.ID, appsub.UpdateSubscriptionRequest{Status: &paused})
		require.NoError(t, err)
		assert.False(t, updated.IsActive())
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	sub, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, sub.ID))
	_, err = svc.Get(ctx, sub.ID)
	assert.Error(t, err)
}
