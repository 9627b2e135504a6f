package persistence

import (
	"context"
	"errors"

	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/mycofresh/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormSaleRepository implements trade.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id string) (*trade.Sale, error) {
	var sale trade.Sale
	if err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAll returns all sales, newest date first
func (r *GormSaleRepository) FindAll(ctx context.Context) ([]trade.Sale, error) {
	var sales []trade.Sale
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// FindByDateRange returns sales with from <= date <= to
func (r *GormSaleRepository) FindByDateRange(ctx context.Context, from, to string) ([]trade.Sale, error) {
	var sales []trade.Sale
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// FindByDates returns sales falling on any of the given dates
func (r *GormSaleRepository) FindByDates(ctx context.Context, dates []string) ([]trade.Sale, error) {
	if len(dates) == 0 {
		return []trade.Sale{}, nil
	}
	var sales []trade.Sale
	if err := r.db.WithContext(ctx).Where("date IN ?", dates).Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// Save creates or updates a sale
func (r *GormSaleRepository) Save(ctx context.Context, sale *trade.Sale) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

// Delete deletes a sale
func (r *GormSaleRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&trade.Sale{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSaleRepository implements SaleRepository
var _ trade.SaleRepository = (*GormSaleRepository)(nil)
