package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Franchise is the tenant unit: every order, bill, food item and expense is
// scoped to one franchise unless marked universal.
type Franchise struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BusinessName string         `gorm:"size:255;not null" json:"business_name"`
	OwnerName    string         `gorm:"size:255;not null" json:"owner_name"`
	Email        string         `gorm:"size:255;unique;not null" json:"email"`
	Phone        string         `gorm:"size:20" json:"phone"`
	Address      string         `gorm:"type:text" json:"address"`
	City         string         `gorm:"size:100" json:"city"`
	State        string         `gorm:"size:100" json:"state"`
	Pincode      string         `gorm:"size:10" json:"pincode"`
	GSTNumber    string         `gorm:"size:20;uniqueIndex" json:"gst_number"`
	IsActive     bool           `gorm:"default:false" json:"is_active"`
	CreatedBy    uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new franchise
func (f *Franchise) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Franchise model
func (Franchise) TableName() string {
	return "franchises"
}

// BillCode derives the bill-number prefix from the first three alphanumeric
// characters of the business name, falling back to "BIL".
func (f *Franchise) BillCode() string {
	var b strings.Builder
	for _, r := range strings.ToUpper(f.BusinessName) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == 3 {
				break
			}
		}
	}
	if b.Len() == 0 {
		return "BIL"
	}
	return b.String()
}

// OrderCode derives the order-number prefix from the last four characters of
// the franchise id.
func (f *Franchise) OrderCode() string {
	id := f.ID.String()
	return strings.ToUpper(id[len(id)-4:])
}
