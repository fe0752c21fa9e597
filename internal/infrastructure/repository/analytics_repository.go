package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	domainRepo "github.com/restrobill/restrobill-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// CategorySales aggregates billed item sales per food category. Item
// snapshots whose food row was deleted fall into the UNKNOWN bucket.
func (r *analyticsRepository) CategorySales(ctx context.Context, start, end time.Time) ([]domainRepo.CategorySalesResult, error) {
	query := `
		SELECT
			COALESCE(f.category, -1) AS category,
			COUNT(DISTINCT o.id) AS orders_count,
			COALESCE(SUM(oi.quantity), 0) AS items_sold,
			COALESCE(SUM(oi.sub_total), 0) AS revenue
		FROM bills b
		JOIN orders o ON o.id = b.order_id
		JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN foods f ON f.id = oi.food_id AND f.deleted_at IS NULL
		WHERE b.paid_at >= ? AND b.paid_at <= ?`
	args := []interface{}{start, end}

	if skip, ok := ctx.Value(SkipFranchiseScopeKey).(bool); !ok || !skip {
		franchiseID, ok := ctx.Value(FranchiseIDKey).(uuid.UUID)
		if !ok {
			return []domainRepo.CategorySalesResult{}, nil
		}
		query += " AND b.franchise_id = ?"
		args = append(args, franchiseID)
	}

	query += " GROUP BY COALESCE(f.category, -1) ORDER BY revenue DESC"

	rows := []struct {
		Category    int
		OrdersCount int64
		ItemsSold   int64
		Revenue     int64
	}{}
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	results := make([]domainRepo.CategorySalesResult, 0, len(rows))
	for _, row := range rows {
		name := "UNKNOWN"
		if row.Category >= 0 {
			name = enum.FoodCategory(row.Category).String()
		}
		results = append(results, domainRepo.CategorySalesResult{
			Category:     name,
			OrdersCount:  row.OrdersCount,
			ItemsSold:    row.ItemsSold,
			TotalRevenue: float64(row.Revenue) / 100,
		})
	}
	return results, nil
}

func (r *analyticsRepository) UpsertSnapshot(ctx context.Context, snapshot *entity.AnalyticsSnapshot) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "generated_by"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_orders", "total_revenue", "popular_items", "franchise_id", "updated_at",
			}),
		}).
		Create(snapshot).Error
}

func (r *analyticsRepository) ListSnapshots(ctx context.Context, generatedBy uuid.UUID, limit int) ([]entity.AnalyticsSnapshot, error) {
	var snapshots []entity.AnalyticsSnapshot
	if limit <= 0 {
		limit = 30
	}
	err := r.db.WithContext(ctx).
		Where("generated_by = ?", generatedBy).
		Order("date DESC").
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, err
}
