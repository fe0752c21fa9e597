package repository

import (
	"context"
	"testing"

	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSequenceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&entity.SequenceCounter{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func TestSequenceNextIncrements(t *testing.T) {
	repo := NewSequenceRepository(setupSequenceTestDB(t))
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		got, err := repo.Next(ctx, "order:abc")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSequenceScopesAreIndependent(t *testing.T) {
	repo := NewSequenceRepository(setupSequenceTestDB(t))
	ctx := context.Background()

	first, err := repo.Next(ctx, "order:abc")
	assert.NoError(t, err)
	second, err := repo.Next(ctx, "order:abc")
	assert.NoError(t, err)
	other, err := repo.Next(ctx, "bill:abc")
	assert.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, int64(1), other)
}
