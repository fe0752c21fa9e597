package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order is a restaurant order. Monetary fields are stored in paise and hold
// the invariant TotalAmount == SubTotal + Tax - Discount. Item prices are
// snapshotted at creation time and never change with the catalog.
type Order struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber   string             `gorm:"size:32;unique;not null" json:"order_number"`
	FranchiseID   *uuid.UUID         `gorm:"type:uuid;index" json:"franchise_id,omitempty"`
	OrderType     enum.OrderType     `gorm:"default:0" json:"order_type"`
	Status        enum.OrderStatus   `gorm:"default:0;index" json:"status"`
	PaymentStatus enum.PaymentStatus `gorm:"default:0;index" json:"payment_status"`
	PaymentMethod *enum.PaymentMethod `json:"payment_method,omitempty"`
	SubTotal      int64              `gorm:"default:0" json:"-"`
	Tax           int64              `gorm:"default:0" json:"-"`
	Discount      int64              `gorm:"default:0" json:"-"`
	TotalAmount   int64              `gorm:"default:0" json:"-"`
	CustomerName  *string            `gorm:"size:255" json:"customer_name,omitempty"`
	TableNumber   *string            `gorm:"size:20" json:"table_number,omitempty"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CompletedAt   *time.Time         `json:"completed_at,omitempty"`
	CreatedBy     uuid.UUID          `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Franchise *Franchise  `gorm:"foreignKey:FranchiseID" json:"franchise,omitempty"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// MarshalJSON renders the paise amounts as 2-decimal values
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		SubTotal    float64 `json:"subtotal"`
		Tax         float64 `json:"tax"`
		Discount    float64 `json:"discount"`
		TotalAmount float64 `json:"total_amount"`
	}{
		Alias:       Alias(o),
		SubTotal:    float64(o.SubTotal) / 100,
		Tax:         float64(o.Tax) / 100,
		Discount:    float64(o.Discount) / 100,
		TotalAmount: float64(o.TotalAmount) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem is one line of an order. FoodID is a weak reference: the line
// keeps its name and price snapshot even if the food is later removed.
type OrderItem struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"order_id"`
	FoodID              uuid.UUID      `gorm:"type:uuid;not null;index" json:"food_id"`
	FoodName            string         `gorm:"size:255;not null" json:"food_name"`
	Quantity            int            `gorm:"not null" json:"quantity"`
	Price               int64          `gorm:"not null" json:"-"`
	SubTotal            int64          `gorm:"not null" json:"-"`
	SpecialInstructions *string        `gorm:"type:text" json:"special_instructions,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

// MarshalJSON renders the paise amounts as 2-decimal values
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		Price    float64 `json:"price"`
		SubTotal float64 `json:"subtotal"`
	}{
		Alias:    Alias(i),
		Price:    float64(i.Price) / 100,
		SubTotal: float64(i.SubTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
