package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	infraRepo "github.com/restrobill/restrobill-api/internal/infrastructure/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newFoodTestService(db *gorm.DB) *FoodService {
	return NewFoodService(infraRepo.NewFoodRepository(db))
}

func TestCreateFoodScopesToFranchise(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFoodTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}

	food, err := svc.CreateFood(franchiseCtx(franchise.ID), actor, &CreateFoodInput{
		Name:     "Masala Chai",
		Category: enum.FoodCategoryBeverages,
		Price:    25.50,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2550), food.Price)
	assert.True(t, food.IsAvailable)
	if assert.NotNil(t, food.FranchiseID) {
		assert.Equal(t, franchise.ID, *food.FranchiseID)
	}
}

func TestCreateFoodUniversalRequiresSuperAdmin(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFoodTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	admin := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}

	_, err := svc.CreateFood(franchiseCtx(franchise.ID), admin, &CreateFoodInput{
		Name:        "Mineral Water",
		Category:    enum.FoodCategoryBeverages,
		Price:       10.00,
		IsUniversal: true,
	})
	assert.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	super := Actor{UserID: uuid.New(), Role: enum.RoleSuperAdmin}
	superCtx := infraRepo.WithSkipFranchiseScope(context.Background(), true)
	food, err := svc.CreateFood(superCtx, super, &CreateFoodInput{
		Name:        "Mineral Water",
		Category:    enum.FoodCategoryBeverages,
		Price:       10.00,
		IsUniversal: true,
	})
	assert.NoError(t, err)
	assert.True(t, food.IsUniversal)
	assert.Nil(t, food.FranchiseID)
}

func TestCreateFoodRejectsDuplicateName(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFoodTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)

	input := &CreateFoodInput{Name: "Masala Chai", Category: enum.FoodCategoryBeverages, Price: 25.00}
	_, err := svc.CreateFood(ctx, actor, input)
	assert.NoError(t, err)

	// Name match is case-insensitive
	_, err = svc.CreateFood(ctx, actor, &CreateFoodInput{
		Name: "MASALA CHAI", Category: enum.FoodCategoryBeverages, Price: 30.00,
	})
	assert.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestUpdateFoodOwnershipRules(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFoodTestService(db)

	mine := seedFranchise(t, db, "Chai Point")
	other := seedFranchise(t, db, "Dosa Plaza")
	theirs := seedFood(t, db, &other.ID, "Masala Dosa", 80.00, true)
	universal := seedFood(t, db, nil, "Mineral Water", 10.00, true)
	universal.IsUniversal = true
	assert.NoError(t, db.Save(universal).Error)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &mine.ID}
	ctx := franchiseCtx(mine.ID)
	price := 90.00

	// Another franchise's item
	_, err := svc.UpdateFood(ctx, actor, theirs.ID, &UpdateFoodInput{Price: &price})
	assert.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	// Universal items are off limits to franchise admins
	_, err = svc.UpdateFood(ctx, actor, universal.ID, &UpdateFoodInput{Price: &price})
	assert.Error(t, err)
	assert.Equal(t, 403, apperror.GetAppError(err).Code)

	// Super admins can touch anything
	super := Actor{UserID: uuid.New(), Role: enum.RoleSuperAdmin}
	superCtx := infraRepo.WithSkipFranchiseScope(context.Background(), true)
	updated, err := svc.UpdateFood(superCtx, super, theirs.ID, &UpdateFoodInput{Price: &price})
	assert.NoError(t, err)
	assert.Equal(t, int64(9000), updated.Price)
}

func TestSetAvailability(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFoodTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)

	food, err := svc.SetAvailability(ctx, actor, tea.ID, false)
	assert.NoError(t, err)
	assert.False(t, food.IsAvailable)

	food, err = svc.SetAvailability(ctx, actor, tea.ID, true)
	assert.NoError(t, err)
	assert.True(t, food.IsAvailable)
}

func TestGetFoodHidesForeignItems(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFoodTestService(db)

	mine := seedFranchise(t, db, "Chai Point")
	other := seedFranchise(t, db, "Dosa Plaza")
	theirs := seedFood(t, db, &other.ID, "Masala Dosa", 80.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &mine.ID}
	_, err := svc.GetFood(franchiseCtx(mine.ID), actor, theirs.ID)
	assert.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
