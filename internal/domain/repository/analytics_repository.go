package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
)

// CategorySalesResult is a sales aggregate per food category. Bills whose
// item snapshots no longer resolve to a food row land in the UNKNOWN bucket.
type CategorySalesResult struct {
	Category     string  `json:"category"`
	OrdersCount  int64   `json:"orders_count"`
	ItemsSold    int64   `json:"items_sold"`
	TotalRevenue float64 `json:"total_revenue"`
}

// AnalyticsRepository covers the aggregate queries that are cheaper to run
// in SQL than to fold in memory, plus snapshot persistence.
type AnalyticsRepository interface {
	CategorySales(ctx context.Context, start, end time.Time) ([]CategorySalesResult, error)
	// UpsertSnapshot inserts or replaces the snapshot for (generatedBy, date).
	UpsertSnapshot(ctx context.Context, snapshot *entity.AnalyticsSnapshot) error
	ListSnapshots(ctx context.Context, generatedBy uuid.UUID, limit int) ([]entity.AnalyticsSnapshot, error)
}
