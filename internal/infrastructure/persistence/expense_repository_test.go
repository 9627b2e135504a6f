package persistence

import (
	"context"
	"testing"

	"github.com/mycofresh/backend/internal/domain/finance"
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormExpenseRepository_FindFreeSampleForSale(t *testing.T) {
	ctx := context.Background()

	t.Run("matches on sale_id first", func(t *testing.T) {
		repo := NewGormExpenseRepository(setupTestDB(t))

		linked := finance.NewFreeSampleExpense("sale_1", "INV-7", decimal.NewFromInt(120), "2026-08-01", "wh_1")
		require.NoError(t, repo.Save(ctx, linked))

		// Decoy with the same description but no back-reference
		legacy, err := finance.NewExpense(finance.CategoryFreeSamples,
			finance.FreeSampleDescription("INV-7"), decimal.NewFromInt(99), "2026-07-01", "wh_1")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, legacy))

		found, err := repo.FindFreeSampleForSale(ctx, "sale_1", "INV-7")
		require.NoError(t, err)
		assert.Equal(t, linked.ID, found.ID)
	})

	t.Run("falls back to the legacy description", func(t *testing.T) {
		repo := NewGormExpenseRepository(setupTestDB(t))

		legacy, err := finance.NewExpense(finance.CategoryFreeSamples,
			finance.FreeSampleDescription("INV-7"), decimal.NewFromInt(99), "2026-07-01", "wh_1")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, legacy))

		found, err := repo.FindFreeSampleForSale(ctx, "sale_1", "INV-7")
		require.NoError(t, err)
		assert.Equal(t, legacy.ID, found.ID)
	})

	t.Run("not found when neither match exists", func(t *testing.T) {
		repo := NewGormExpenseRepository(setupTestDB(t))

		other, err := finance.NewExpense("PACKAGING", "boxes", decimal.NewFromInt(10), "2026-08-01", "wh_1")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, other))

		_, err = repo.FindFreeSampleForSale(ctx, "sale_1", "INV-7")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormExpenseRepository_FindByDateRange(t *testing.T) {
	ctx := context.Background()
	repo := NewGormExpenseRepository(setupTestDB(t))

	for _, date := range []string{"2026-07-31", "2026-08-01", "2026-08-15", "2026-09-01"} {
		expense, err := finance.NewExpense("RAW_MATERIAL", "spawn bags", decimal.NewFromInt(50), date, "wh_1")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, expense))
	}

	expenses, err := repo.FindByDateRange(ctx, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	for _, e := range expenses {
		assert.True(t, e.Date >= "2026-08-01" && e.Date <= "2026-08-31")
	}
}

func TestGormExpenseRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewGormExpenseRepository(setupTestDB(t))

	expense, err := finance.NewExpense("UTILITIES", "power", decimal.NewFromInt(30), "2026-08-01", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, expense))

	require.NoError(t, repo.Delete(ctx, expense.ID))
	assert.ErrorIs(t, repo.Delete(ctx, expense.ID), shared.ErrNotFound)
}
