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

type franchiseRepository struct {
	db *gorm.DB
}

// NewFranchiseRepository creates a new franchise repository
func NewFranchiseRepository(db *gorm.DB) domainRepo.FranchiseRepository {
	return &franchiseRepository{db: db}
}

func (r *franchiseRepository) Create(ctx context.Context, franchise *entity.Franchise) error {
	return r.db.WithContext(ctx).Create(franchise).Error
}

func (r *franchiseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Franchise, error) {
	var franchise entity.Franchise
	err := r.db.WithContext(ctx).First(&franchise, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &franchise, err
}

func (r *franchiseRepository) GetByEmailOrGST(ctx context.Context, email, gstNumber string) (*entity.Franchise, error) {
	var franchise entity.Franchise
	query := r.db.WithContext(ctx)
	if gstNumber != "" {
		query = query.Where("email = ? OR gst_number = ?", email, gstNumber)
	} else {
		query = query.Where("email = ?", email)
	}
	err := query.First(&franchise).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &franchise, err
}

func (r *franchiseRepository) Update(ctx context.Context, franchise *entity.Franchise) error {
	return r.db.WithContext(ctx).Save(franchise).Error
}

func (r *franchiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Franchise{}, "id = ?", id).Error
}

func (r *franchiseRepository) List(ctx context.Context, params *domainRepo.FranchiseFilterParams) ([]entity.Franchise, int64, error) {
	var franchises []entity.Franchise
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Franchise{})

	if params.Search != "" {
		like := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(business_name) LIKE ? OR LOWER(owner_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	if params.City != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(params.City))
	}

	if params.State != "" {
		query = query.Where("LOWER(state) = ?", strings.ToLower(params.State))
	}

	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&franchises).Error

	return franchises, total, err
}

func (r *franchiseRepository) Counts(ctx context.Context, id uuid.UUID) (*domainRepo.FranchiseCounts, error) {
	var counts domainRepo.FranchiseCounts

	if err := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("franchise_id = ?", id).Count(&counts.Users).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Food{}).
		Where("franchise_id = ?", id).Count(&counts.Foods).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("franchise_id = ?", id).Count(&counts.Orders).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.Bill{}).
		Where("franchise_id = ?", id).Count(&counts.Bills).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}
