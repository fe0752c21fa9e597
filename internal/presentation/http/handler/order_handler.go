package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/application/service"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/restrobill/restrobill-api/internal/presentation/http/dto/request"
	"github.com/restrobill/restrobill-api/internal/presentation/http/dto/response"
	"github.com/restrobill/restrobill-api/pkg/pagination"
)

// OrderHandler handles order HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func toItemInputs(items []request.OrderItemRequest) []service.OrderItemInput {
	inputs := make([]service.OrderItemInput, len(items))
	for i, item := range items {
		inputs[i] = service.OrderItemInput{
			FoodID:              item.FoodID,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		}
	}
	return inputs
}

// Create handles order creation
func (h *OrderHandler) Create(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	orderType, err := enum.ParseOrderType(req.OrderType)
	if err != nil {
		response.BadRequest(c, "Invalid order type")
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), *actor, &service.CreateOrderInput{
		OrderType:    orderType,
		Items:        toItemInputs(req.Items),
		Discount:     req.Discount,
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order created successfully", order)
}

// List handles listing orders
func (h *OrderHandler) List(c *gin.Context) {
	var req request.OrderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
	}

	if req.Status != "" {
		status, err := enum.ParseOrderStatus(req.Status)
		if err != nil {
			response.BadRequest(c, "Invalid order status")
			return
		}
		params.Status = &status
	}
	if req.OrderType != "" {
		orderType, err := enum.ParseOrderType(req.OrderType)
		if err != nil {
			response.BadRequest(c, "Invalid order type")
			return
		}
		params.OrderType = &orderType
	}
	if req.PaymentStatus != "" {
		paymentStatus, err := enum.ParsePaymentStatus(req.PaymentStatus)
		if err != nil {
			response.BadRequest(c, "Invalid payment status")
			return
		}
		params.PaymentStatus = &paymentStatus
	}
	if req.StartDate != "" {
		if startDate, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			params.StartDate = &startDate
		}
	}
	if req.EndDate != "" {
		if endDate, err := time.Parse("2006-01-02", req.EndDate); err == nil {
			params.EndDate = &endDate
		}
	}

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(orders, total, params.Pagination)
	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles fetching an order with its items
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// Update handles order updates
func (h *OrderHandler) Update(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateOrderInput{
		Discount:     req.Discount,
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Notes:        req.Notes,
	}
	if req.OrderType != nil {
		orderType, err := enum.ParseOrderType(*req.OrderType)
		if err != nil {
			response.BadRequest(c, "Invalid order type")
			return
		}
		input.OrderType = &orderType
	}
	if req.Items != nil {
		input.Items = toItemInputs(req.Items)
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), *actor, id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order updated successfully", order)
}

// UpdateStatus handles order status transitions
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status, err := enum.ParseOrderStatus(req.Status)
	if err != nil {
		response.BadRequest(c, "Invalid order status")
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}

// Delete handles order deletion
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order deleted successfully", nil)
}

// Stats returns order counts and revenue for a window
func (h *OrderHandler) Stats(c *gin.Context) {
	start, end, err := service.ResolveWindow(c.Query("period"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	stats, err := h.orderService.GetOrderStats(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order stats retrieved successfully", stats)
}
