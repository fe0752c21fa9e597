package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
)

// ExpenseService handles expense tracking operations
type ExpenseService struct {
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// CreateExpenseInput represents the create expense input
type CreateExpenseInput struct {
	Category    string
	Amount      float64
	Description string
	ExpenseDate time.Time
	ReceiptURL  *string
}

// CreateExpense records an expense for the actor's franchise
func (s *ExpenseService) CreateExpense(ctx context.Context, actor Actor, input *CreateExpenseInput) (*entity.Expense, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Expense amount must be greater than zero")
	}

	expense := &entity.Expense{
		FranchiseID: actor.FranchiseID,
		Category:    input.Category,
		Description: input.Description,
		ExpenseDate: input.ExpenseDate,
		ReceiptURL:  input.ReceiptURL,
		CreatedBy:   actor.UserID,
	}
	expense.SetAmountFromDecimal(input.Amount)
	if expense.ExpenseDate.IsZero() {
		expense.ExpenseDate = time.Now()
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpense fetches a single expense within the caller's scope
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}
	return expense, nil
}

// ListExpenses returns expenses matching the filters
func (s *ExpenseService) ListExpenses(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	return s.expenseRepo.List(ctx, params)
}

// UpdateExpenseInput represents the update expense input
type UpdateExpenseInput struct {
	Category    *string
	Amount      *float64
	Description *string
	ExpenseDate *time.Time
	ReceiptURL  *string
}

// UpdateExpense applies partial updates to an expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, input *UpdateExpenseInput) (*entity.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperror.NewNotFoundError("Expense")
	}

	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Expense amount must be greater than zero")
		}
		expense.SetAmountFromDecimal(*input.Amount)
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.ExpenseDate != nil {
		expense.ExpenseDate = *input.ExpenseDate
	}
	if input.ReceiptURL != nil {
		expense.ReceiptURL = input.ReceiptURL
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense record
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	expense, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return apperror.NewNotFoundError("Expense")
	}
	return s.expenseRepo.Delete(ctx, id)
}

// ExpenseStats aggregates expenses over a window
type ExpenseStats struct {
	TotalExpenses float64                           `json:"total_expenses"`
	ByCategory    []repository.ExpenseCategoryTotal `json:"by_category"`
}

// GetExpenseStats returns the window total and per-category breakdown
func (s *ExpenseService) GetExpenseStats(ctx context.Context, start, end time.Time) (*ExpenseStats, error) {
	total, err := s.expenseRepo.SumInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.expenseRepo.CategoryTotals(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return &ExpenseStats{
		TotalExpenses: float64(total) / 100,
		ByCategory:    byCategory,
	}, nil
}
