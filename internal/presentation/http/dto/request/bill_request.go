package request

import "github.com/google/uuid"

// GenerateBillRequest represents a bill generation request
type GenerateBillRequest struct {
	OrderID       uuid.UUID `json:"order_id" binding:"required"`
	PaymentMethod string    `json:"payment_method" binding:"required"`
	PaidAmount    *float64  `json:"paid_amount" binding:"omitempty,gte=0"`
	CustomerName  *string   `json:"customer_name"`
	CustomerPhone *string   `json:"customer_phone"`
}

// BillFilterRequest represents bill filter parameters
type BillFilterRequest struct {
	Search        string `form:"search"`
	PaymentMethod string `form:"payment_method"`
	StartDate     string `form:"start_date"`
	EndDate       string `form:"end_date"`
	Page          int    `form:"page"`
	PerPage       int    `form:"per_page"`
}
