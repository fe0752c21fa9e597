package request

// CreateFoodRequest represents a menu item creation request
type CreateFoodRequest struct {
	Name            string  `json:"name" binding:"required,min=2,max=255"`
	Description     string  `json:"description"`
	Category        string  `json:"category" binding:"required"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	IsUniversal     bool    `json:"is_universal"`
	PreparationTime int     `json:"preparation_time" binding:"omitempty,min=1"`
}

// UpdateFoodRequest represents a menu item update request
type UpdateFoodRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	Price           *float64 `json:"price" binding:"omitempty,gt=0"`
	IsAvailable     *bool    `json:"is_available"`
	PreparationTime *int     `json:"preparation_time" binding:"omitempty,min=1"`
}

// FoodAvailabilityRequest represents an availability toggle request
type FoodAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// FoodFilterRequest represents food filter parameters
type FoodFilterRequest struct {
	Search      string `form:"search"`
	Category    string `form:"category"`
	IsAvailable *bool  `form:"is_available"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}
