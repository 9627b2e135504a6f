package persistence

import (
	"context"
	"errors"

	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/mycofresh/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormWholesaleSaleRepository implements trade.WholesaleSaleRepository using GORM
type GormWholesaleSaleRepository struct {
	db *gorm.DB
}

// NewGormWholesaleSaleRepository creates a new GormWholesaleSaleRepository
func NewGormWholesaleSaleRepository(db *gorm.DB) *GormWholesaleSaleRepository {
	return &GormWholesaleSaleRepository{db: db}
}

// FindByID finds a wholesale sale by its ID
func (r *GormWholesaleSaleRepository) FindByID(ctx context.Context, id string) (*trade.WholesaleSale, error) {
	var sale trade.WholesaleSale
	if err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll returns all wholesale sales, newest date first
func (r *GormWholesaleSaleRepository) FindAll(ctx context.Context) ([]trade.WholesaleSale, error) {
	var sales []trade.WholesaleSale
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// FindByDateRange returns wholesale sales with from <= date <= to
func (r *GormWholesaleSaleRepository) FindByDateRange(ctx context.Context, from, to string) ([]trade.WholesaleSale, error) {
	var sales []trade.WholesaleSale
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// FindByDates returns wholesale sales falling on any of the given dates
func (r *GormWholesaleSaleRepository) FindByDates(ctx context.Context, dates []string) ([]trade.WholesaleSale, error) {
	if len(dates) == 0 {
		return []trade.WholesaleSale{}, nil
	}
	var sales []trade.WholesaleSale
	if err := r.db.WithContext(ctx).Where("date IN ?", dates).Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Save creates or updates a wholesale sale
func (r *GormWholesaleSaleRepository) Save(ctx context.Context, sale *trade.WholesaleSale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

// Delete deletes a wholesale sale
func (r *GormWholesaleSaleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&trade.WholesaleSale{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormWholesaleSaleRepository implements WholesaleSaleRepository
var _ trade.WholesaleSaleRepository = (*GormWholesaleSaleRepository)(nil)
