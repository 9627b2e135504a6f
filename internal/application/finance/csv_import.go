package finance

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/mycofresh/backend/internal/domain/finance"
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// csvColumns is the expected header, in order
var csvColumns = []string{"date", "category", "description", "amount", "warehouse_id"}

// ImportCSV reads expenses from a CSV stream. Rows that fail to parse or
// save are skipped and reported by row number; valid rows are kept.
func (s *ExpenseService) ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, shared.NewValidationError("CSV file is empty or unreadable")
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []string{}}
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row, err))
			continue
		}

		expense, err := parseExpenseRow(record)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row, err))
			continue
		}
		if err := s.expenseRepo.Save(ctx, expense); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", row, err))
			continue
		}
		result.Imported++
	}
	return result, nil
}

func validateHeader(header []string) error {
	if len(header) < len(csvColumns) {
		return shared.NewValidationError(
			fmt.Sprintf("CSV header must contain columns: %s", strings.Join(csvColumns, ",")))
	}
	for i, want := range csvColumns {
		if strings.ToLower(strings.TrimSpace(header[i])) != want {
			return shared.NewValidationError(
				fmt.Sprintf("CSV header must contain columns: %s", strings.Join(csvColumns, ",")))
		}
	}
	return nil
}

func parseExpenseRow(record []string) (*finance.Expense, error) {
	if len(record) < len(csvColumns) {
		return nil, fmt.Errorf("expected %d columns, got %d", len(csvColumns), len(record))
	}

	date := strings.TrimSpace(record[0])
	category := strings.TrimSpace(record[1])
	description := strings.TrimSpace(record[2])
	amountRaw := strings.TrimSpace(record[3])
	warehouseID := strings.TrimSpace(record[4])

	amount, err := decimal.NewFromString(amountRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q", amountRaw)
	}

	return finance.NewExpense(category, description, amount, date, warehouseID)
}
