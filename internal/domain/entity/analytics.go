package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsSnapshot is a persisted daily rollup of the aggregator output.
// It is derived, disposable state: the bills remain the source of truth and
// a snapshot can be regenerated for any date at any time.
type AnalyticsSnapshot struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Date         time.Time  `gorm:"type:date;not null;index:idx_snapshot_owner_date,unique" json:"date"`
	GeneratedBy  uuid.UUID  `gorm:"type:uuid;not null;index:idx_snapshot_owner_date,unique" json:"generated_by"`
	FranchiseID  *uuid.UUID `gorm:"type:uuid;index" json:"franchise_id,omitempty"`
	TotalOrders  int64      `gorm:"default:0" json:"total_orders"`
	TotalRevenue int64      `gorm:"default:0" json:"-"`
	PopularItems string     `gorm:"type:text" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new snapshot
func (a *AnalyticsSnapshot) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AnalyticsSnapshot model
func (AnalyticsSnapshot) TableName() string {
	return "analytics_snapshots"
}
