package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/application/service"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/restrobill/restrobill-api/internal/presentation/http/dto/request"
	"github.com/restrobill/restrobill-api/internal/presentation/http/dto/response"
	"github.com/restrobill/restrobill-api/pkg/pagination"
)

// FoodHandler handles menu item HTTP requests
type FoodHandler struct {
	foodService *service.FoodService
}

// NewFoodHandler creates a new food handler
func NewFoodHandler(foodService *service.FoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// Create handles menu item creation
func (h *FoodHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := enum.ParseFoodCategory(req.Category)
	if err != nil {
		response.BadRequest(c, "Invalid food category")
		return
	}

	food, err := h.foodService.CreateFood(c.Request.Context(), *actor, &service.CreateFoodInput{
		Name:            req.Name,
		Description:     req.Description,
		Category:        category,
		Price:           req.Price,
		IsUniversal:     req.IsUniversal,
		PreparationTime: req.PreparationTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Food item created successfully", food)
}

// List handles listing menu items
func (h *FoodHandler) List(c *gin.Context) {
	var req request.FoodFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.FoodFilterParams{
		Pagination:  &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:      req.Search,
		IsAvailable: req.IsAvailable,
	}
	if req.Category != "" {
		category, err := enum.ParseFoodCategory(req.Category)
		if err != nil {
			response.BadRequest(c, "Invalid food category")
			return
		}
		params.Category = &category
	}

	foods, total, err := h.foodService.ListFoods(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(foods, total, params.Pagination)
	response.SuccessWithPagination(c, 200, "Food items retrieved successfully", result)
}

// Get handles fetching a single menu item
func (h *FoodHandler) Get(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid food ID")
		return
	}

	food, err := h.foodService.GetFood(c.Request.Context(), *actor, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Food item retrieved successfully", food)
}

// Update handles menu item updates
func (h *FoodHandler) Update(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid food ID")
		return
	}

	var req request.UpdateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateFoodInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		IsAvailable:     req.IsAvailable,
		PreparationTime: req.PreparationTime,
	}
	if req.Category != nil {
		category, err := enum.ParseFoodCategory(*req.Category)
		if err != nil {
			response.BadRequest(c, "Invalid food category")
			return
		}
		input.Category = &category
	}

	food, err := h.foodService.UpdateFood(c.Request.Context(), *actor, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Food item updated successfully", food)
}

// SetAvailability toggles whether a menu item can be ordered
func (h *FoodHandler) SetAvailability(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid food ID")
		return
	}

	var req request.FoodAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	food, err := h.foodService.SetAvailability(c.Request.Context(), *actor, id, *req.IsAvailable)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Food availability updated", food)
}

// Delete handles menu item deletion
func (h *FoodHandler) Delete(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid food ID")
		return
	}

	if err := h.foodService.DeleteFood(c.Request.Context(), *actor, id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Food item deleted successfully", nil)
}
