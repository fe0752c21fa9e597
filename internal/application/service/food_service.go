package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
)

// FoodService handles menu item operations
type FoodService struct {
	foodRepo repository.FoodRepository
}

// NewFoodService creates a new food service
func NewFoodService(foodRepo repository.FoodRepository) *FoodService {
	return &FoodService{foodRepo: foodRepo}
}

// Actor identifies the caller for authorization decisions
type Actor struct {
	UserID      uuid.UUID
	Role        enum.Role
	FranchiseID *uuid.UUID
}

// IsSuperAdmin reports whether the actor has the super admin role
func (a Actor) IsSuperAdmin() bool {
	return a.Role == enum.RoleSuperAdmin
}

// CreateFoodInput represents the create food input
type CreateFoodInput struct {
	Name            string
	Description     string
	Category        enum.FoodCategory
	Price           float64
	IsUniversal     bool
	PreparationTime int
}

// CreateFood adds a menu item. Only super admins can create universal items;
// franchise admins create items scoped to their own franchise.
func (s *FoodService) CreateFood(ctx context.Context, actor Actor, input *CreateFoodInput) (*entity.Food, error) {
	if input.IsUniversal && !actor.IsSuperAdmin() {
		return nil, apperror.NewForbiddenError("Only super admins can create universal menu items")
	}

	existing, err := s.foodRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A menu item with this name already exists")
	}

	food := &entity.Food{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		IsAvailable: true,
		IsUniversal: input.IsUniversal,
		CreatedBy:   actor.UserID,
	}
	food.SetPriceFromDecimal(input.Price)
	if input.PreparationTime > 0 {
		food.PreparationTime = input.PreparationTime
	}
	if !input.IsUniversal {
		food.FranchiseID = actor.FranchiseID
	}

	if err := s.foodRepo.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// GetFood fetches a menu item the actor is allowed to see
func (s *FoodService) GetFood(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Food, error) {
	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperror.NewNotFoundError("Food item")
	}
	if !actor.IsSuperAdmin() && !food.AccessibleBy(actor.FranchiseID) {
		return nil, apperror.NewNotFoundError("Food item")
	}
	return food, nil
}

// ListFoods returns menu items visible to the caller
func (s *FoodService) ListFoods(ctx context.Context, params *repository.FoodFilterParams) ([]entity.Food, int64, error) {
	return s.foodRepo.List(ctx, params)
}

// UpdateFoodInput represents the update food input
type UpdateFoodInput struct {
	Name            *string
	Description     *string
	Category        *enum.FoodCategory
	Price           *float64
	IsAvailable     *bool
	PreparationTime *int
}

// UpdateFood applies partial updates to a menu item the actor owns
func (s *FoodService) UpdateFood(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateFoodInput) (*entity.Food, error) {
	food, err := s.getOwnedFood(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		food.Name = *input.Name
	}
	if input.Description != nil {
		food.Description = *input.Description
	}
	if input.Category != nil {
		food.Category = *input.Category
	}
	if input.Price != nil {
		food.SetPriceFromDecimal(*input.Price)
	}
	if input.IsAvailable != nil {
		food.IsAvailable = *input.IsAvailable
	}
	if input.PreparationTime != nil && *input.PreparationTime > 0 {
		food.PreparationTime = *input.PreparationTime
	}

	if err := s.foodRepo.Update(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// SetAvailability toggles whether a menu item can be ordered
func (s *FoodService) SetAvailability(ctx context.Context, actor Actor, id uuid.UUID, available bool) (*entity.Food, error) {
	food, err := s.getOwnedFood(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	food.IsAvailable = available
	if err := s.foodRepo.Update(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// DeleteFood soft-deletes a menu item the actor owns
func (s *FoodService) DeleteFood(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.getOwnedFood(ctx, actor, id); err != nil {
		return err
	}
	return s.foodRepo.Delete(ctx, id)
}

// getOwnedFood fetches a food the actor may modify. Universal items belong
// to super admins; franchise items to their franchise.
func (s *FoodService) getOwnedFood(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Food, error) {
	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperror.NewNotFoundError("Food item")
	}
	if actor.IsSuperAdmin() {
		return food, nil
	}
	if food.IsUniversal {
		return nil, apperror.NewForbiddenError("Universal menu items can only be modified by super admins")
	}
	if food.FranchiseID == nil || actor.FranchiseID == nil || *food.FranchiseID != *actor.FranchiseID {
		return nil, apperror.NewForbiddenError("You can only modify menu items belonging to your franchise")
	}
	return food, nil
}
