package request

// CreateFranchiseRequest represents a franchise creation request
type CreateFranchiseRequest struct {
	BusinessName string `json:"business_name" binding:"required,min=2,max=255"`
	OwnerName    string `json:"owner_name" binding:"required,min=2,max=255"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required,min=10,max=15"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required,max=100"`
	State        string `json:"state" binding:"required,max=100"`
	Pincode      string `json:"pincode" binding:"required,min=6,max=6"`
	GSTNumber    string `json:"gst_number" binding:"omitempty,len=15"`
}

// UpdateFranchiseRequest represents a franchise update request
type UpdateFranchiseRequest struct {
	BusinessName *string `json:"business_name" binding:"omitempty,min=2,max=255"`
	OwnerName    *string `json:"owner_name" binding:"omitempty,min=2,max=255"`
	Phone        *string `json:"phone" binding:"omitempty,min=10,max=15"`
	Address      *string `json:"address"`
	City         *string `json:"city" binding:"omitempty,max=100"`
	State        *string `json:"state" binding:"omitempty,max=100"`
	Pincode      *string `json:"pincode" binding:"omitempty,min=6,max=6"`
	GSTNumber    *string `json:"gst_number" binding:"omitempty,len=15"`
}

// FranchiseStatusRequest represents an activation toggle request
type FranchiseStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// FranchiseFilterRequest represents franchise filter parameters
type FranchiseFilterRequest struct {
	Search   string `form:"search"`
	City     string `form:"city"`
	State    string `form:"state"`
	IsActive *bool  `form:"is_active"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
