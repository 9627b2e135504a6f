package persistence

import (
	"context"
	"errors"

	"github.com/mycofresh/backend/internal/domain/finance"
	"github.com/mycofresh/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormExpenseRepository implements finance.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id string) (*finance.Expense, error) {
	var expense finance.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// FindAll returns all expenses, newest date first
func (r *GormExpenseRepository) FindAll(ctx context.Context) ([]finance.Expense, error) {
	var expenses []finance.Expense
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// FindByDateRange returns expenses with from <= date <= to
func (r *GormExpenseRepository) FindByDateRange(ctx context.Context, from, to string) ([]finance.Expense, error) {
	var expenses []finance.Expense
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// FindFreeSampleForSale locates the free-sample expense linked to a sale.
// Rows written by older versions carry no sale_id, so the invoice-derived
// description is kept as a fallback lookup.
func (r *GormExpenseRepository) FindFreeSampleForSale(ctx context.Context, saleID, invoiceNumber string) (*finance.Expense, error) {
	var expense finance.Expense
	err := r.db.WithContext(ctx).
		Where("category = ? AND sale_id = ?", finance.CategoryFreeSamples, saleID).
		First(&expense).Error
	if err == nil {
		return &expense, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Where("category = ? AND sale_id IS NULL AND description = ?",
			finance.CategoryFreeSamples, finance.FreeSampleDescription(invoiceNumber)).
		First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *finance.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// Delete deletes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&finance.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormExpenseRepository implements ExpenseRepository
var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
