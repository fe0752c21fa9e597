package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/pkg/pagination"
)

// ExpenseFilterParams holds filters for expense listing
type ExpenseFilterParams struct {
	Pagination *pagination.PaginationParams
	Category   string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ExpenseCategoryTotal is an expense sum bucketed by category
type ExpenseCategoryTotal struct {
	Category string  `json:"category"`
	Count    int64   `json:"count"`
	Total    float64 `json:"total"`
}

// ExpenseRepository defines data access for expenses
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ExpenseFilterParams) ([]entity.Expense, int64, error)
	// SumInWindow returns the scoped expense total (paise) for the window.
	SumInWindow(ctx context.Context, start, end time.Time) (int64, error)
	CategoryTotals(ctx context.Context, start, end time.Time) ([]ExpenseCategoryTotal, error)
}
