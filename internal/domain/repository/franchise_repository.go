package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/pkg/pagination"
)

// FranchiseFilterParams holds filters for franchise listing
type FranchiseFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	City       string
	State      string
	IsActive   *bool
}

// FranchiseCounts summarizes the records attached to a franchise
type FranchiseCounts struct {
	Users  int64 `json:"users"`
	Foods  int64 `json:"foods"`
	Orders int64 `json:"orders"`
	Bills  int64 `json:"bills"`
}

// FranchiseRepository defines data access for franchises
type FranchiseRepository interface {
	Create(ctx context.Context, franchise *entity.Franchise) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Franchise, error)
	GetByEmailOrGST(ctx context.Context, email, gstNumber string) (*entity.Franchise, error)
	Update(ctx context.Context, franchise *entity.Franchise) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *FranchiseFilterParams) ([]entity.Franchise, int64, error)
	Counts(ctx context.Context, id uuid.UUID) (*FranchiseCounts, error)
}
