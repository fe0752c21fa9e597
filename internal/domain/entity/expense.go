package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is an operating cost recorded against a franchise. Amount is in paise.
type Expense struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FranchiseID *uuid.UUID     `gorm:"type:uuid;index" json:"franchise_id,omitempty"`
	Category    string         `gorm:"size:100;not null;index" json:"category"`
	Amount      int64          `gorm:"not null" json:"-"`
	Description string         `gorm:"type:text;not null" json:"description"`
	ExpenseDate time.Time      `gorm:"not null;index" json:"expense_date"`
	ReceiptURL  *string        `gorm:"size:512" json:"receipt_url,omitempty"`
	CreatedBy   uuid.UUID      `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON renders the paise amount as a 2-decimal value
func (e Expense) MarshalJSON() ([]byte, error) {
	type Alias Expense
	return json.Marshal(&struct {
		Alias
		Amount float64 `json:"amount"`
	}{
		Alias:  Alias(e),
		Amount: float64(e.Amount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Expense model
func (Expense) TableName() string {
	return "expenses"
}

// SetAmountFromDecimal sets the amount from a decimal value
func (e *Expense) SetAmountFromDecimal(amount float64) {
	e.Amount = int64(amount*100 + 0.5)
}
