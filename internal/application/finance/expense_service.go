package finance

import (
	"context"

	"github.com/mycofresh/backend/internal/domain/finance"
)

// ExpenseService handles expense ledger operations
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// List returns all expenses, newest date first
func (s *ExpenseService) List(ctx context.Context) ([]finance.Expense, error) {
	return s.expenseRepo.FindAll(ctx)
}

// Get returns one expense
func (s *ExpenseService) Get(ctx context.Context, id string) (*finance.Expense, error) {
	return s.expenseRepo.FindByID(ctx, id)
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*finance.Expense, error) {
	expense, err := finance.NewExpense(req.Category, req.Description, req.Amount, req.Date, req.WarehouseID)
	if err != nil {
		return nil, err
	}
	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Update merges the given fields into the expense
func (s *ExpenseService) Update(ctx context.Context, id string, req UpdateExpenseRequest) (*finance.Expense, error) {
	expense, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Date != nil && *req.Date != "" {
		expense.Date = *req.Date
	}
	if req.WarehouseID != nil {
		expense.WarehouseID = *req.WarehouseID
	}

	if err := s.expenseRepo.Save(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Delete deletes an expense
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	return s.expenseRepo.Delete(ctx, id)
}
