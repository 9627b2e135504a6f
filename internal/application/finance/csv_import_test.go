package finance_test

import (
	"context"
	"strings"
	"testing"

	appfinance "github.com/mycofresh/backend/internal/application/finance"
	"github.com/mycofresh/backend/internal/domain/finance"
	"github.com/mycofresh/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newExpenseService(t *testing.T) *appfinance.ExpenseService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&finance.Expense{}))

	return appfinance.NewExpenseService(persistence.NewGormExpenseRepository(db))
}

func TestExpenseService_ImportCSV(t *testing.T) {
	ctx := context.Background()

	t.Run("imports well-formed rows", func(t *testing.T) {
		svc := newExpenseService(t)

		csv := strings.Join([]string{
			"date,category,description,amount,warehouse_id",
			"2026-08-01,RAW_MATERIAL,spawn bags,1200.50,wh_1",
			"2026-08-02,UTILITIES,electricity,430,",
		}, "\n")

		result, err := svc.ImportCSV(ctx, strings.NewReader(csv))
		require.NoError(t, err)

		assert.Equal(t, 2, result.Imported)
		assert.Empty(t, result.Errors)

		expenses, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, expenses, 2)
	})

	t.Run("keeps good rows and reports bad ones by number", func(t *testing.T) {
		svc := newExpenseService(t)

		csv := strings.Join([]string{
			"date,category,description,amount,warehouse_id",
			"2026-08-01,RAW_MATERIAL,spawn bags,1200.50,wh_1",
			"2026-08-02,UTILITIES,electricity,not-a-number,",
			",PACKAGING,boxes,100,",
		}, "\n")

		result, err := svc.ImportCSV(ctx, strings.NewReader(csv))
		require.NoError(t, err)

		assert.Equal(t, 1, result.Imported)
		require.Len(t, result.Errors, 2)
		assert.Contains(t, result.Errors[0], "Row 3:")
		assert.Contains(t, result.Errors[0], "invalid amount")
		assert.Contains(t, result.Errors[1], "Row 4:")
	})

	t.Run("rejects a wrong header outright", func(t *testing.T) {
		svc := newExpenseService(t)

		_, err := svc.ImportCSV(ctx, strings.NewReader("foo,bar\n1,2\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CSV header must contain columns")
	})

	t.Run("rejects an empty file", func(t *testing.T) {
		svc := newExpenseService(t)

		_, err := svc.ImportCSV(ctx, strings.NewReader(""))
		require.Error(t, err)
	})
}
