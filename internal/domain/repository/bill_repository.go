package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"github.com/restrobill/restrobill-api/pkg/pagination"
)

// BillFilterParams holds filters for bill listing
type BillFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	PaymentMethod *enum.PaymentMethod
	StartDate     *time.Time
	EndDate       *time.Time
}

// BillRepository defines data access for bills
type BillRepository interface {
	Create(ctx context.Context, bill *entity.Bill) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Bill, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *BillFilterParams) ([]entity.Bill, int64, error)
	// ListInWindow returns every scoped bill paid inside [start, end], with
	// order and line items preloaded, ordered by paid_at descending. The
	// aggregator consumes these as a point-in-time snapshot.
	ListInWindow(ctx context.Context, start, end time.Time) ([]entity.Bill, error)
}
