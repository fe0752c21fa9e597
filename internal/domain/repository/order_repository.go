package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"github.com/restrobill/restrobill-api/pkg/pagination"
)

// OrderFilterParams holds filters for order listing
type OrderFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Status        *enum.OrderStatus
	OrderType     *enum.OrderType
	PaymentStatus *enum.PaymentStatus
	StartDate     *time.Time
	EndDate       *time.Time
}

// OrderStats summarizes order counts and completed revenue in a window
type OrderStats struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	CompletedOrders int64   `json:"completed_orders"`
	CancelledOrders int64   `json:"cancelled_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}

// OrderRepository defines data access for orders
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	// ReplaceItems swaps the order's line items inside one transaction.
	ReplaceItems(ctx context.Context, orderID uuid.UUID, items []entity.OrderItem) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus, completedAt *time.Time) error
	// MarkBilled flips the order to COMPLETED/PAID when its bill is written.
	MarkBilled(ctx context.Context, id uuid.UUID, method enum.PaymentMethod, completedAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	Stats(ctx context.Context, start, end time.Time) (*OrderStats, error)
}
