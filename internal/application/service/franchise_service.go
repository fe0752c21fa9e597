package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
)

// FranchiseService handles franchise management operations
type FranchiseService struct {
	franchiseRepo repository.FranchiseRepository
}

// NewFranchiseService creates a new franchise service
func NewFranchiseService(franchiseRepo repository.FranchiseRepository) *FranchiseService {
	return &FranchiseService{franchiseRepo: franchiseRepo}
}

// CreateFranchiseInput represents the create franchise input
type CreateFranchiseInput struct {
	BusinessName string
	OwnerName    string
	Email        string
	Phone        string
	Address      string
	City         string
	State        string
	Pincode      string
	GSTNumber    string
	CreatedBy    uuid.UUID
}

// CreateFranchise registers a new franchise, inactive until approved
func (s *FranchiseService) CreateFranchise(ctx context.Context, input *CreateFranchiseInput) (*entity.Franchise, error) {
	existing, err := s.franchiseRepo.GetByEmailOrGST(ctx, input.Email, input.GSTNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Franchise with this email or GST number already exists")
	}

	franchise := &entity.Franchise{
		BusinessName: input.BusinessName,
		OwnerName:    input.OwnerName,
		Email:        input.Email,
		Phone:        input.Phone,
		Address:      input.Address,
		City:         input.City,
		State:        input.State,
		Pincode:      input.Pincode,
		GSTNumber:    input.GSTNumber,
		IsActive:     false,
		CreatedBy:    input.CreatedBy,
	}
	if err := s.franchiseRepo.Create(ctx, franchise); err != nil {
		return nil, err
	}
	return franchise, nil
}

// GetFranchise fetches a single franchise with its entity counts
func (s *FranchiseService) GetFranchise(ctx context.Context, id uuid.UUID) (*entity.Franchise, *repository.FranchiseCounts, error) {
	franchise, err := s.franchiseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if franchise == nil {
		return nil, nil, apperror.NewNotFoundError("Franchise")
	}

	counts, err := s.franchiseRepo.Counts(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return franchise, counts, nil
}

// ListFranchises returns franchises matching the filters
func (s *FranchiseService) ListFranchises(ctx context.Context, params *repository.FranchiseFilterParams) ([]entity.Franchise, int64, error) {
	return s.franchiseRepo.List(ctx, params)
}

// UpdateFranchiseInput represents the update franchise input
type UpdateFranchiseInput struct {
	BusinessName *string
	OwnerName    *string
	Phone        *string
	Address      *string
	City         *string
	State        *string
	Pincode      *string
	GSTNumber    *string
}

// UpdateFranchise applies partial updates to a franchise
func (s *FranchiseService) UpdateFranchise(ctx context.Context, id uuid.UUID, input *UpdateFranchiseInput) (*entity.Franchise, error) {
	franchise, err := s.franchiseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, apperror.NewNotFoundError("Franchise")
	}

	if input.BusinessName != nil {
		franchise.BusinessName = *input.BusinessName
	}
	if input.OwnerName != nil {
		franchise.OwnerName = *input.OwnerName
	}
	if input.Phone != nil {
		franchise.Phone = *input.Phone
	}
	if input.Address != nil {
		franchise.Address = *input.Address
	}
	if input.City != nil {
		franchise.City = *input.City
	}
	if input.State != nil {
		franchise.State = *input.State
	}
	if input.Pincode != nil {
		franchise.Pincode = *input.Pincode
	}
	if input.GSTNumber != nil {
		franchise.GSTNumber = *input.GSTNumber
	}

	if err := s.franchiseRepo.Update(ctx, franchise); err != nil {
		return nil, err
	}
	return franchise, nil
}

// SetFranchiseStatus activates or deactivates a franchise
func (s *FranchiseService) SetFranchiseStatus(ctx context.Context, id uuid.UUID, active bool) (*entity.Franchise, error) {
	franchise, err := s.franchiseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, apperror.NewNotFoundError("Franchise")
	}

	franchise.IsActive = active
	if err := s.franchiseRepo.Update(ctx, franchise); err != nil {
		return nil, err
	}
	return franchise, nil
}

// DeleteFranchise soft-deletes a franchise
func (s *FranchiseService) DeleteFranchise(ctx context.Context, id uuid.UUID) error {
	franchise, err := s.franchiseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if franchise == nil {
		return apperror.NewNotFoundError("Franchise")
	}
	return s.franchiseRepo.Delete(ctx, id)
}
