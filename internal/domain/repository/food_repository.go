package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"github.com/restrobill/restrobill-api/pkg/pagination"
)

// FoodFilterParams holds filters for food listing
type FoodFilterParams struct {
	Pagination  *pagination.PaginationParams
	Search      string
	Category    *enum.FoodCategory
	IsAvailable *bool
}

// FoodRepository defines data access for menu items
type FoodRepository interface {
	Create(ctx context.Context, food *entity.Food) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
	// GetByName resolves a food by exact name, case-insensitively, within the
	// caller's scope.
	GetByName(ctx context.Context, name string) (*entity.Food, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Food, error)
	Update(ctx context.Context, food *entity.Food) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *FoodFilterParams) ([]entity.Food, int64, error)
}
