package persistence

import (
	"context"
	"time"

	"github.com/mycofresh/backend/internal/domain/inventory"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInvoiceCounterRepository implements inventory.CounterRepository using GORM
type GormInvoiceCounterRepository struct {
	db *gorm.DB
}

// NewGormInvoiceCounterRepository creates a new GormInvoiceCounterRepository
func NewGormInvoiceCounterRepository(db *gorm.DB) *GormInvoiceCounterRepository {
	return &GormInvoiceCounterRepository{db: db}
}

// NextNumber advances the counter for the given type and returns the new
// value. The increment-and-read is a single UPDATE ... RETURNING statement,
// so concurrent callers always receive distinct contiguous numbers. The
// counter row itself is created on first use.
func (r *GormInvoiceCounterRepository) NextNumber(ctx context.Context, t inventory.CounterType) (int, error) {
	counter := inventory.NewInvoiceCounter(t)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "counter_type"}},
		DoNothing: true,
	}).Create(counter).Error; err != nil {
		return 0, err
	}

	var number int
	err := r.db.WithContext(ctx).Raw(
		"UPDATE invoice_counters SET current_number = current_number + 1, updated_at = ? WHERE counter_type = ? RETURNING current_number",
		time.Now(), string(t),
	).Scan(&number).Error
	if err != nil {
		return 0, err
	}
	return number, nil
}

// Ensure GormInvoiceCounterRepository implements CounterRepository
var _ inventory.CounterRepository = (*GormInvoiceCounterRepository)(nil)
