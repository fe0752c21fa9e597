package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/application/service"
	"github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/restrobill/restrobill-api/internal/presentation/http/dto/request"
	"github.com/restrobill/restrobill-api/internal/presentation/http/dto/response"
	"github.com/restrobill/restrobill-api/pkg/pagination"
)

// FranchiseHandler handles franchise management HTTP requests
type FranchiseHandler struct {
	franchiseService *service.FranchiseService
}

// NewFranchiseHandler creates a new franchise handler
func NewFranchiseHandler(franchiseService *service.FranchiseService) *FranchiseHandler {
	return &FranchiseHandler{franchiseService: franchiseService}
}

// Create handles franchise registration
func (h *FranchiseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	franchise, err := h.franchiseService.CreateFranchise(c.Request.Context(), &service.CreateFranchiseInput{
		BusinessName: req.BusinessName,
		OwnerName:    req.OwnerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		GSTNumber:    req.GSTNumber,
		CreatedBy:    *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Franchise created successfully", franchise)
}

// List handles listing franchises
func (h *FranchiseHandler) List(c *gin.Context) {
	var req request.FranchiseFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.FranchiseFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		City:       req.City,
		State:      req.State,
		IsActive:   req.IsActive,
	}

	franchises, total, err := h.franchiseService.ListFranchises(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(franchises, total, params.Pagination)
	response.SuccessWithPagination(c, 200, "Franchises retrieved successfully", result)
}

// Get handles fetching a franchise with its counts
func (h *FranchiseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid franchise ID")
		return
	}

	franchise, counts, err := h.franchiseService.GetFranchise(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Franchise retrieved successfully", gin.H{
		"franchise": franchise,
		"counts":    counts,
	})
}

// Update handles franchise updates
func (h *FranchiseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid franchise ID")
		return
	}

	var req request.UpdateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	franchise, err := h.franchiseService.UpdateFranchise(c.Request.Context(), id, &service.UpdateFranchiseInput{
		BusinessName: req.BusinessName,
		OwnerName:    req.OwnerName,
		Phone:        req.Phone,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		Pincode:      req.Pincode,
		GSTNumber:    req.GSTNumber,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Franchise updated successfully", franchise)
}

// SetStatus handles activating or deactivating a franchise
func (h *FranchiseHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid franchise ID")
		return
	}

	var req request.FranchiseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	franchise, err := h.franchiseService.SetFranchiseStatus(c.Request.Context(), id, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Franchise deactivated"
	if *req.IsActive {
		message = "Franchise activated"
	}
	response.OK(c, message, franchise)
}

// Delete handles franchise deletion
func (h *FranchiseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid franchise ID")
		return
	}

	if err := h.franchiseService.DeleteFranchise(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Franchise deleted successfully", nil)
}
