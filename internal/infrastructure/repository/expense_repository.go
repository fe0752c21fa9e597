package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	domainRepo "github.com/restrobill/restrobill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expense entity.Expense
	err := r.db.WithContext(ctx).
		Scopes(FranchiseScope(ctx)).
		First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Expense{}, "id = ?", id).Error
}

func (r *expenseRepository) List(ctx context.Context, params *domainRepo.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	var expenses []entity.Expense
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Expense{}).Scopes(FranchiseScope(ctx))

	if params.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(params.Category))
	}

	if params.StartDate != nil {
		query = query.Where("expense_date >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("expense_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("expense_date DESC").
		Find(&expenses).Error

	return expenses, total, err
}

func (r *expenseRepository) SumInWindow(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Scopes(FranchiseScope(ctx)).
		Where("expense_date >= ? AND expense_date <= ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *expenseRepository) CategoryTotals(ctx context.Context, start, end time.Time) ([]domainRepo.ExpenseCategoryTotal, error) {
	rows := []struct {
		Category string
		Count    int64
		Total    int64
	}{}

	err := r.db.WithContext(ctx).Model(&entity.Expense{}).
		Scopes(FranchiseScope(ctx)).
		Where("expense_date >= ? AND expense_date <= ?", start, end).
		Select("category, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	totals := make([]domainRepo.ExpenseCategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, domainRepo.ExpenseCategoryTotal{
			Category: row.Category,
			Count:    row.Count,
			Total:    float64(row.Total) / 100,
		})
	}
	return totals, nil
}
