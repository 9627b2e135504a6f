package persistence

import (
	"context"
	"errors"

	"github.com/mycofresh/backend/internal/domain/inventory"
	"github.com/mycofresh/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements inventory.RecordRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByID finds an inventory record by its ID
func (r *GormInventoryRepository) FindByID(ctx context.Context, id string) (*inventory.Record, error) {
	var record inventory.Record
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindAll returns all inventory records
func (r *GormInventoryRepository) FindAll(ctx context.Context) ([]inventory.Record, error) {
	var records []inventory.Record
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByProductAndWarehouse finds the record for one (product, warehouse) pair
func (r *GormInventoryRepository) FindByProductAndWarehouse(ctx context.Context, productID, warehouseID string) (*inventory.Record, error) {
	var record inventory.Record
	if err := r.db.WithContext(ctx).
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// QuantityOf returns the on-hand quantity; a missing record counts as zero
func (r *GormInventoryRepository) QuantityOf(ctx context.Context, productID, warehouseID string) (int, error) {
	record, err := r.FindByProductAndWarehouse(ctx, productID, warehouseID)
	if errors.Is(err, shared.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return record.Quantity, nil
}

// AdjustQuantity applies delta as one conditional update so the stored
// quantity can never pass below zero, even under concurrent decrements.
// A missing record is created lazily when delta is positive.
func (r *GormInventoryRepository) AdjustQuantity(ctx context.Context, productID, warehouseID string, delta int) error {
	result := r.db.WithContext(ctx).Model(&inventory.Record{}).
		Where("product_id = ? AND warehouse_id = ? AND quantity + ? >= 0", productID, warehouseID, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Either the row does not exist or the decrement would go negative
	var record inventory.Record
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if delta <= 0 {
			return shared.NewInsufficientStockError(productID, -delta, 0)
		}
		created := inventory.NewRecord(productID, warehouseID, delta)
		insert := r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "warehouse_id"}},
			DoNothing: true,
		}).Create(created)
		if insert.Error != nil {
			return insert.Error
		}
		if insert.RowsAffected > 0 {
			return nil
		}
		// Lost the insert race; the winner's row takes the delta instead
		return r.AdjustQuantity(ctx, productID, warehouseID, delta)
	}
	if err != nil {
		return err
	}
	return shared.NewInsufficientStockError(productID, -delta, record.Quantity)
}

// StockedCount counts records holding positive quantity at a warehouse
func (r *GormInventoryRepository) StockedCount(ctx context.Context, warehouseID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&inventory.Record{}).
		Where("warehouse_id = ? AND quantity > 0", warehouseID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an inventory record
func (r *GormInventoryRepository) Save(ctx context.Context, record *inventory.Record) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete deletes an inventory record
func (r *GormInventoryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&inventory.Record{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormInventoryRepository implements RecordRepository
var _ inventory.RecordRepository = (*GormInventoryRepository)(nil)
