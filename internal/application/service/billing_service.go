package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/application/pricing"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	"github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
)

// BillingService settles orders into bills
type BillingService struct {
	billRepo      repository.BillRepository
	orderRepo     repository.OrderRepository
	franchiseRepo repository.FranchiseRepository
	sequenceRepo  repository.SequenceRepository
	policy        pricing.Policy
}

// NewBillingService creates a new billing service
func NewBillingService(
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	franchiseRepo repository.FranchiseRepository,
	sequenceRepo repository.SequenceRepository,
	policy pricing.Policy,
) *BillingService {
	return &BillingService{
		billRepo:      billRepo,
		orderRepo:     orderRepo,
		franchiseRepo: franchiseRepo,
		sequenceRepo:  sequenceRepo,
		policy:        policy,
	}
}

// GenerateBillInput represents the bill generation input
type GenerateBillInput struct {
	OrderID       uuid.UUID
	PaymentMethod enum.PaymentMethod
	PaidAmount    *float64
	CustomerName  *string
	CustomerPhone *string
}

// GenerateBill settles an order: computes bill totals, assigns the bill
// number and marks the order completed and paid.
func (s *BillingService) GenerateBill(ctx context.Context, actor Actor, input *GenerateBillInput) (*entity.Bill, error) {
	order, err := s.orderRepo.GetWithItems(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCancelled {
		return nil, apperror.NewInvalidStateError("Cannot generate a bill for a CANCELLED order")
	}

	existing, err := s.billRepo.GetByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A bill already exists for this order")
	}

	totals := s.policy.BillTotals(pricing.OrderTotals{
		SubTotal:    order.SubTotal,
		Tax:         order.Tax,
		Discount:    order.Discount,
		TotalAmount: order.TotalAmount,
	})

	billNumber, err := s.nextBillNumber(ctx, order.FranchiseID)
	if err != nil {
		return nil, err
	}

	// Paid amount defaults to the bill total for exact settlements.
	paid := totals.TotalAmount
	if input.PaidAmount != nil {
		paid = pricing.ToPaise(*input.PaidAmount)
	}
	now := time.Now()

	bill := &entity.Bill{
		BillNumber:    billNumber,
		OrderID:       order.ID,
		FranchiseID:   order.FranchiseID,
		SubTotal:      totals.SubTotal,
		CGST:          totals.CGST,
		SGST:          totals.SGST,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		TotalAmount:   totals.TotalAmount,
		PaymentMethod: input.PaymentMethod,
		PaidAmount:    paid,
		ChangeAmount:  pricing.ChangeAmount(paid, totals.TotalAmount),
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		PaidAt:        now,
		GeneratedBy:   actor.UserID,
	}
	if bill.CustomerName == nil {
		bill.CustomerName = order.CustomerName
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	if err := s.orderRepo.MarkBilled(ctx, order.ID, input.PaymentMethod, now); err != nil {
		return nil, err
	}

	bill.Order = order
	return bill, nil
}

// GetBill fetches a bill with order and items
func (s *BillingService) GetBill(ctx context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperror.NewNotFoundError("Bill")
	}
	return bill, nil
}

// ListBills returns bills matching the filters within the caller's scope
func (s *BillingService) ListBills(ctx context.Context, params *repository.BillFilterParams) ([]entity.Bill, int64, error) {
	return s.billRepo.List(ctx, params)
}

// DeleteBill removes a bill record
func (s *BillingService) DeleteBill(ctx context.Context, id uuid.UUID) error {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bill == nil {
		return apperror.NewNotFoundError("Bill")
	}
	return s.billRepo.Delete(ctx, id)
}

// nextBillNumber builds the business-coded sequential bill number
func (s *BillingService) nextBillNumber(ctx context.Context, franchiseID *uuid.UUID) (string, error) {
	code := "BIL"
	scope := "bill:global"
	if franchiseID != nil {
		franchise, err := s.franchiseRepo.GetByID(ctx, *franchiseID)
		if err != nil {
			return "", err
		}
		if franchise != nil {
			code = franchise.BillCode()
		}
		scope = "bill:" + franchiseID.String()
	}

	seq, err := s.sequenceRepo.Next(ctx, scope)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%06d", code, seq), nil
}
