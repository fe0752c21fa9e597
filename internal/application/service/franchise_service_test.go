package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/application/pricing"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	infraRepo "github.com/restrobill/restrobill-api/internal/infrastructure/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newFranchiseTestService(db *gorm.DB) *FranchiseService {
	return NewFranchiseService(infraRepo.NewFranchiseRepository(db))
}

func TestCreateFranchiseStartsInactive(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFranchiseTestService(db)

	franchise, err := svc.CreateFranchise(context.Background(), &CreateFranchiseInput{
		BusinessName: "Chai Point",
		OwnerName:    "Asha",
		Email:        "chai@example.com",
		GSTNumber:    "27AAAAA0000A1Z5",
		CreatedBy:    uuid.New(),
	})
	assert.NoError(t, err)
	assert.False(t, franchise.IsActive)
	assert.NotEqual(t, uuid.Nil, franchise.ID)
}

func TestCreateFranchiseRejectsDuplicateEmailOrGST(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFranchiseTestService(db)
	ctx := context.Background()

	_, err := svc.CreateFranchise(ctx, &CreateFranchiseInput{
		BusinessName: "Chai Point",
		OwnerName:    "Asha",
		Email:        "chai@example.com",
		GSTNumber:    "27AAAAA0000A1Z5",
		CreatedBy:    uuid.New(),
	})
	assert.NoError(t, err)

	_, err = svc.CreateFranchise(ctx, &CreateFranchiseInput{
		BusinessName: "Other",
		OwnerName:    "Ravi",
		Email:        "chai@example.com",
		GSTNumber:    "29BBBBB1111B2Z6",
		CreatedBy:    uuid.New(),
	})
	assert.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)

	_, err = svc.CreateFranchise(ctx, &CreateFranchiseInput{
		BusinessName: "Other",
		OwnerName:    "Ravi",
		Email:        "other@example.com",
		GSTNumber:    "27AAAAA0000A1Z5",
		CreatedBy:    uuid.New(),
	})
	assert.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestSetFranchiseStatus(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFranchiseTestService(db)
	ctx := context.Background()

	franchise := seedFranchise(t, db, "Chai Point")

	updated, err := svc.SetFranchiseStatus(ctx, franchise.ID, false)
	assert.NoError(t, err)
	assert.False(t, updated.IsActive)

	updated, err = svc.SetFranchiseStatus(ctx, franchise.ID, true)
	assert.NoError(t, err)
	assert.True(t, updated.IsActive)
}

func TestGetFranchiseIncludesCounts(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFranchiseTestService(db)
	ctx := context.Background()

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)
	seedFood(t, db, &franchise.ID, "Samosa", 15.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	orders := newOrderTestService(db, pricing.DefaultPolicy())
	_, err := orders.CreateOrder(franchiseCtx(franchise.ID), actor, &CreateOrderInput{
		OrderType: enum.OrderTypeDineIn,
		Items:     []OrderItemInput{{FoodID: tea.ID, Quantity: 1}},
	})
	assert.NoError(t, err)

	fetched, counts, err := svc.GetFranchise(ctx, franchise.ID)
	assert.NoError(t, err)
	assert.Equal(t, franchise.ID, fetched.ID)
	assert.Equal(t, int64(2), counts.Foods)
	assert.Equal(t, int64(1), counts.Orders)
}

func TestDeleteFranchiseNotFound(t *testing.T) {
	db := setupOrderTestDB(t)
	svc := newFranchiseTestService(db)

	err := svc.DeleteFranchise(context.Background(), uuid.New())
	assert.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
