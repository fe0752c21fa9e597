package request

// CreateExpenseRequest represents an expense creation request
type CreateExpenseRequest struct {
	Category    string  `json:"category" binding:"required,max=100"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
	ExpenseDate string  `json:"expense_date" binding:"omitempty,datetime=2006-01-02"`
	ReceiptURL  *string `json:"receipt_url"`
}

// UpdateExpenseRequest represents an expense update request
type UpdateExpenseRequest struct {
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Description *string  `json:"description"`
	ExpenseDate *string  `json:"expense_date" binding:"omitempty,datetime=2006-01-02"`
	ReceiptURL  *string  `json:"receipt_url"`
}

// ExpenseFilterRequest represents expense filter parameters
type ExpenseFilterRequest struct {
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
