package persistence

import (
	"context"
	"sync"
	"testing"

	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormInvoiceCounterRepository_NextNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("issues contiguous numbers starting at one", func(t *testing.T) {
		repo := NewGormInvoiceCounterRepository(setupTestDB(t))

		for want := 1; want <= 5; want++ {
			got, err := repo.NextNumber(ctx, inventory.CounterSale)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("keeps sequences independent per counter type", func(t *testing.T) {
		repo := NewGormInvoiceCounterRepository(setupTestDB(t))

		n, err := repo.NextNumber(ctx, inventory.CounterSale)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = repo.NextNumber(ctx, inventory.CounterSale)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		n, err = repo.NextNumber(ctx, inventory.CounterWholesaleSale)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		n, err = repo.NextNumber(ctx, inventory.CounterSubscription)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("unknown types get their own sequence too", func(t *testing.T) {
		repo := NewGormInvoiceCounterRepository(setupTestDB(t))

		n, err := repo.NextNumber(ctx, inventory.CounterType("adhoc"))
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, "N/A-1", inventory.InvoiceCode(inventory.CounterType("adhoc"), n))
	})
}

func TestGormInvoiceCounterRepository_ConcurrentNextNumber(t *testing.T) {
	db := setupTestDB(t)

	// SQLite's in-memory driver needs a single connection; the callers still
	// contend on the UPDATE ... RETURNING statement itself
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	repo := NewGormInvoiceCounterRepository(db)
	ctx := context.Background()

	const callers = 20
	results := make(chan int, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := repo.NextNumber(ctx, inventory.CounterSale)
			assert.NoError(t, err)
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool, callers)
	for n := range results {
		assert.False(t, seen[n], "number %d issued twice", n)
		seen[n] = true
	}
	require.Len(t, seen, callers)
	for want := 1; want <= callers; want++ {
		assert.True(t, seen[want], "sequence has a gap at %d", want)
	}
}
