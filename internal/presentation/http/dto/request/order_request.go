package request

import "github.com/google/uuid"

// OrderItemRequest represents a requested line item
type OrderItemRequest struct {
	FoodID              uuid.UUID `json:"food_id" binding:"required"`
	Quantity            int       `json:"quantity" binding:"required,min=1"`
	SpecialInstructions *string   `json:"special_instructions"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	OrderType    string             `json:"order_type" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount     float64            `json:"discount" binding:"omitempty,min=0"`
	CustomerName *string            `json:"customer_name"`
	TableNumber  *string            `json:"table_number"`
	Notes        *string            `json:"notes"`
}

// UpdateOrderRequest represents an order update request. Omitting items
// keeps the existing ones.
type UpdateOrderRequest struct {
	OrderType    *string            `json:"order_type"`
	Items        []OrderItemRequest `json:"items" binding:"omitempty,dive"`
	Discount     *float64           `json:"discount" binding:"omitempty,min=0"`
	CustomerName *string            `json:"customer_name"`
	TableNumber  *string            `json:"table_number"`
	Notes        *string            `json:"notes"`
}

// OrderStatusRequest represents a status transition request
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderFilterRequest represents order filter parameters
type OrderFilterRequest struct {
	Search        string `form:"search"`
	Status        string `form:"status"`
	OrderType     string `form:"order_type"`
	PaymentStatus string `form:"payment_status"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
