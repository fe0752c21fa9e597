package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupScopeTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&entity.Order{}, &entity.OrderItem{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func seedScopedOrders(t *testing.T, db *gorm.DB) (uuid.UUID, uuid.UUID) {
	franchiseA := uuid.New()
	franchiseB := uuid.New()
	for i, fid := range []uuid.UUID{franchiseA, franchiseA, franchiseB} {
		order := &entity.Order{
			OrderNumber: uuid.NewString()[:8],
			FranchiseID: &fid,
			OrderType:   enum.OrderTypeDineIn,
			Status:      enum.OrderStatusPending,
			CreatedBy:   uuid.New(),
		}
		if err := db.Create(order).Error; err != nil {
			t.Fatalf("Failed to seed order %d: %v", i, err)
		}
	}
	return franchiseA, franchiseB
}

func TestFranchiseScopeFiltersByFranchise(t *testing.T) {
	db := setupScopeTestDB(t)
	franchiseA, franchiseB := seedScopedOrders(t, db)

	var count int64
	ctx := WithFranchise(context.Background(), franchiseA)
	err := db.Model(&entity.Order{}).Scopes(FranchiseScope(ctx)).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	ctx = WithFranchise(context.Background(), franchiseB)
	err = db.Model(&entity.Order{}).Scopes(FranchiseScope(ctx)).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestFranchiseScopeFailsClosedWithoutContext(t *testing.T) {
	db := setupScopeTestDB(t)
	seedScopedOrders(t, db)

	var count int64
	err := db.Model(&entity.Order{}).Scopes(FranchiseScope(context.Background())).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestFranchiseScopeSkippedForSuperAdmin(t *testing.T) {
	db := setupScopeTestDB(t)
	seedScopedOrders(t, db)

	var count int64
	ctx := WithSkipFranchiseScope(context.Background(), true)
	err := db.Model(&entity.Order{}).Scopes(FranchiseScope(ctx)).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
