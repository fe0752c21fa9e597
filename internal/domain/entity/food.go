package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Food is a menu item. A food belongs to one franchise unless IsUniversal is
// set, in which case every franchise can order it. Price is stored in paise.
type Food struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	FranchiseID     *uuid.UUID        `gorm:"type:uuid;index" json:"franchise_id,omitempty"`
	Name            string            `gorm:"size:255;not null;index" json:"name"`
	Description     string            `gorm:"type:text" json:"description"`
	Category        enum.FoodCategory `gorm:"default:0;index" json:"category"`
	Price           int64             `gorm:"not null" json:"-"`
	IsAvailable     bool              `gorm:"index" json:"is_available"`
	IsUniversal     bool              `gorm:"default:false;index" json:"is_universal"`
	PreparationTime int               `gorm:"default:15" json:"preparation_time"`
	CreatedBy       uuid.UUID         `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	DeletedAt       gorm.DeletedAt    `gorm:"index" json:"-"`
}

// MarshalJSON renders the paise price as a 2-decimal amount
func (f Food) MarshalJSON() ([]byte, error) {
	type Alias Food
	return json.Marshal(&struct {
		Alias
		Price float64 `json:"price"`
	}{
		Alias: Alias(f),
		Price: float64(f.Price) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new food item
func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Food model
func (Food) TableName() string {
	return "foods"
}

// SetPriceFromDecimal sets the price from a decimal value
func (f *Food) SetPriceFromDecimal(price float64) {
	f.Price = int64(price*100 + 0.5)
}

// AccessibleBy reports whether a caller scoped to franchiseID may order this
// food. Universal items are visible everywhere; nil means global scope.
func (f *Food) AccessibleBy(franchiseID *uuid.UUID) bool {
	if f.IsUniversal || f.FranchiseID == nil || franchiseID == nil {
		return true
	}
	return *f.FranchiseID == *franchiseID
}
