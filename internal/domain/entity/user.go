package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents an operator of the system. Franchise admins are bound to
// one franchise; super admins have a nil FranchiseID and global visibility.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name         string         `gorm:"size:255;not null" json:"name"`
	Email        string         `gorm:"size:255;unique;not null" json:"email"`
	Password     string         `gorm:"size:255;not null" json:"-"`
	MobileNo     string         `gorm:"size:20;unique;not null" json:"mobile_no"`
	Role         enum.Role      `gorm:"size:32;default:'FRANCHISE_ADMIN'" json:"role"`
	FranchiseID  *uuid.UUID     `gorm:"type:uuid;index" json:"franchise_id,omitempty"`
	IsVerified   bool           `gorm:"default:false" json:"is_verified"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	OTP          *string        `gorm:"size:10" json:"-"`
	OTPExpiry    *time.Time     `json:"-"`
	RefreshToken *string        `gorm:"type:text" json:"-"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Franchise *Franchise `gorm:"foreignKey:FranchiseID" json:"franchise,omitempty"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsSuperAdmin reports whether the user has global scope.
func (u *User) IsSuperAdmin() bool {
	return u.Role == enum.RoleSuperAdmin
}
