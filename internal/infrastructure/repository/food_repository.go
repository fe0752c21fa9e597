package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	domainRepo "github.com/restrobill/restrobill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a new food repository
func NewFoodRepository(db *gorm.DB) domainRepo.FoodRepository {
	return &foodRepository{db: db}
}

// foodVisibility filters foods to what the caller may see: universal items
// plus the caller's franchise items. Super admins see everything.
func foodVisibility(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skipScope, ok := ctx.Value(SkipFranchiseScopeKey).(bool); ok && skipScope {
			return db
		}
		franchiseID, ok := ctx.Value(FranchiseIDKey).(uuid.UUID)
		if !ok {
			return db.Where("is_universal = ?", true)
		}
		return db.Where("is_universal = ? OR franchise_id IS NULL OR franchise_id = ?", true, franchiseID)
	}
}

func (r *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	return r.db.WithContext(ctx).Create(food).Error
}

func (r *foodRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var food entity.Food
	err := r.db.WithContext(ctx).First(&food, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &food, err
}

func (r *foodRepository) GetByName(ctx context.Context, name string) (*entity.Food, error) {
	var food entity.Food
	err := r.db.WithContext(ctx).
		Scopes(foodVisibility(ctx)).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &food, err
}

func (r *foodRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Food, error) {
	var foods []entity.Food
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&foods).Error
	return foods, err
}

func (r *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	return r.db.WithContext(ctx).Save(food).Error
}

func (r *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Food{}, "id = ?", id).Error
}

func (r *foodRepository) List(ctx context.Context, params *domainRepo.FoodFilterParams) ([]entity.Food, int64, error) {
	var foods []entity.Food
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Food{}).Scopes(foodVisibility(ctx))

	if params.Search != "" {
		like := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}

	if params.IsAvailable != nil {
		query = query.Where("is_available = ?", *params.IsAvailable)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("name ASC").
		Find(&foods).Error

	return foods, total, err
}
