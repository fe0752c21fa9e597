package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	infraRepo "github.com/restrobill/restrobill-api/internal/infrastructure/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
	"github.com/restrobill/restrobill-api/pkg/pagination"
	domainRepo "github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newExpenseTestService(db *gorm.DB) *ExpenseService {
	return NewExpenseService(infraRepo.NewExpenseRepository(db))
}

func TestCreateExpenseValidatesAmount(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newExpenseTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)

	_, err := svc.CreateExpense(ctx, actor, &CreateExpenseInput{
		Category: "RENT", Amount: 0, Description: "September rent",
	})
	assert.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	expense, err := svc.CreateExpense(ctx, actor, &CreateExpenseInput{
		Category: "RENT", Amount: 15000.50, Description: "September rent",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1500050), expense.Amount)
	assert.False(t, expense.ExpenseDate.IsZero())
}

func TestExpensesScopedToFranchise(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newExpenseTestService(db)

	mine := seedFranchise(t, db, "Chai Point")
	other := seedFranchise(t, db, "Dosa Plaza")

	mineActor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &mine.ID}
	otherActor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &other.ID}

	created, err := svc.CreateExpense(franchiseCtx(mine.ID), mineActor, &CreateExpenseInput{
		Category: "RENT", Amount: 100, Description: "Rent",
	})
	assert.NoError(t, err)
	_, err = svc.CreateExpense(franchiseCtx(other.ID), otherActor, &CreateExpenseInput{
		Category: "RENT", Amount: 200, Description: "Rent",
	})
	assert.NoError(t, err)

	_, err = svc.GetExpense(franchiseCtx(other.ID), created.ID)
	assert.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)

	expenses, total, err := svc.ListExpenses(franchiseCtx(mine.ID), &domainRepo.ExpenseFilterParams{
		Pagination: &pagination.PaginationParams{Page: 1, PerPage: 20},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, expenses, 1)
}

func TestGetExpenseStats(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newExpenseTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)

	for _, e := range []struct {
		category string
		amount   float64
	}{
		{"RENT", 90},
		{"INGREDIENTS", 40},
		{"INGREDIENTS", 60},
	} {
		_, err := svc.CreateExpense(ctx, actor, &CreateExpenseInput{
			Category: e.category, Amount: e.amount, Description: e.category,
		})
		assert.NoError(t, err)
	}

	start := time.Now().AddDate(0, 0, -1)
	stats, err := svc.GetExpenseStats(ctx, start, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	assert.Equal(t, 190.0, stats.TotalExpenses)
	if assert.Len(t, stats.ByCategory, 2) {
		// Sorted by total descending
		assert.Equal(t, "INGREDIENTS", stats.ByCategory[0].Category)
		assert.Equal(t, 100.0, stats.ByCategory[0].Total)
		assert.Equal(t, int64(2), stats.ByCategory[0].Count)
		assert.Equal(t, "RENT", stats.ByCategory[1].Category)
	}
}

func TestUpdateExpensePartialFields(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newExpenseTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)

	expense, err := svc.CreateExpense(ctx, actor, &CreateExpenseInput{
		Category: "RENT", Amount: 100, Description: "Rent",
	})
	assert.NoError(t, err)

	amount := 150.0
	updated, err := svc.UpdateExpense(ctx, expense.ID, &UpdateExpenseInput{Amount: &amount})
	assert.NoError(t, err)
	assert.Equal(t, int64(15000), updated.Amount)
	assert.Equal(t, "RENT", updated.Category)

	bad := -5.0
	_, err = svc.UpdateExpense(ctx, expense.ID, &UpdateExpenseInput{Amount: &bad})
	assert.Error(t, err)
}
