package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Bill settles exactly one order; the unique index on OrderID enforces the
// one-bill-per-order rule at the store. Bills are immutable once written,
// except for a full delete. Amounts are in paise.
type Bill struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	BillNumber    string             `gorm:"size:32;unique;not null" json:"bill_number"`
	OrderID       uuid.UUID          `gorm:"type:uuid;uniqueIndex;not null" json:"order_id"`
	FranchiseID   *uuid.UUID         `gorm:"type:uuid;index" json:"franchise_id,omitempty"`
	SubTotal      int64              `gorm:"not null" json:"-"`
	CGST          int64              `gorm:"default:0" json:"-"`
	SGST          int64              `gorm:"default:0" json:"-"`
	Tax           int64              `gorm:"default:0" json:"-"`
	Discount      int64              `gorm:"default:0" json:"-"`
	TotalAmount   int64              `gorm:"not null" json:"-"`
	PaymentMethod enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	PaidAmount    int64              `gorm:"not null" json:"-"`
	ChangeAmount  int64              `gorm:"default:0" json:"-"`
	CustomerName  *string            `gorm:"size:255" json:"customer_name,omitempty"`
	CustomerPhone *string            `gorm:"size:20" json:"customer_phone,omitempty"`
	PaidAt        time.Time          `gorm:"not null;index" json:"paid_at"`
	GeneratedBy   uuid.UUID          `gorm:"type:uuid;not null;index" json:"generated_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Order     *Order     `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Franchise *Franchise `gorm:"foreignKey:FranchiseID" json:"franchise,omitempty"`
}

// MarshalJSON renders the paise amounts as 2-decimal values
func (b Bill) MarshalJSON() ([]byte, error) {
	type Alias Bill
	return json.Marshal(&struct {
		Alias
		SubTotal     float64 `json:"subtotal"`
		CGST         float64 `json:"cgst"`
		SGST         float64 `json:"sgst"`
		Tax          float64 `json:"tax"`
		Discount     float64 `json:"discount"`
		TotalAmount  float64 `json:"total_amount"`
		PaidAmount   float64 `json:"paid_amount"`
		ChangeAmount float64 `json:"change_amount"`
	}{
		Alias:        Alias(b),
		SubTotal:     float64(b.SubTotal) / 100,
		CGST:         float64(b.CGST) / 100,
		SGST:         float64(b.SGST) / 100,
		Tax:          float64(b.Tax) / 100,
		Discount:     float64(b.Discount) / 100,
		TotalAmount:  float64(b.TotalAmount) / 100,
		PaidAmount:   float64(b.PaidAmount) / 100,
		ChangeAmount: float64(b.ChangeAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new bill
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}
