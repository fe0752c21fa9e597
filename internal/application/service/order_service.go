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

// OrderService handles order lifecycle operations
type OrderService struct {
	orderRepo     repository.OrderRepository
	foodRepo      repository.FoodRepository
	franchiseRepo repository.FranchiseRepository
	sequenceRepo  repository.SequenceRepository
	policy        pricing.Policy
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	foodRepo repository.FoodRepository,
	franchiseRepo repository.FranchiseRepository,
	sequenceRepo repository.SequenceRepository,
	policy pricing.Policy,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		foodRepo:      foodRepo,
		franchiseRepo: franchiseRepo,
		sequenceRepo:  sequenceRepo,
		policy:        policy,
	}
}

// OrderItemInput represents a requested line item
type OrderItemInput struct {
	FoodID              uuid.UUID
	Quantity            int
	SpecialInstructions *string
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	OrderType    enum.OrderType
	Items        []OrderItemInput
	Discount     float64
	CustomerName *string
	TableNumber  *string
	Notes        *string
}

// CreateOrder validates items, snapshots prices and creates a pending order
func (s *OrderService) CreateOrder(ctx context.Context, actor Actor, input *CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}

	items, lineTotals, err := s.resolveItems(ctx, actor, input.Items)
	if err != nil {
		return nil, err
	}

	discount := pricing.ToPaise(input.Discount)
	totals := s.policy.OrderTotals(lineTotals, discount)

	orderNumber, err := s.nextOrderNumber(ctx, actor.FranchiseID)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderNumber:   orderNumber,
		FranchiseID:   actor.FranchiseID,
		OrderType:     input.OrderType,
		Status:        enum.OrderStatusPending,
		PaymentStatus: enum.PaymentStatusPending,
		SubTotal:      totals.SubTotal,
		Tax:           totals.Tax,
		Discount:      totals.Discount,
		TotalAmount:   totals.TotalAmount,
		CustomerName:  input.CustomerName,
		TableNumber:   input.TableNumber,
		Notes:         input.Notes,
		CreatedBy:     actor.UserID,
		Items:         items,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder fetches an order with its items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns orders matching the filters within the caller's scope
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return s.orderRepo.List(ctx, params)
}

// UpdateOrderInput represents the update order input. A nil Items slice
// keeps the existing items; an empty one is rejected.
type UpdateOrderInput struct {
	OrderType    *enum.OrderType
	Items        []OrderItemInput
	Discount     *float64
	CustomerName *string
	TableNumber  *string
	Notes        *string
}

// UpdateOrder modifies a pending order and recomputes its totals
func (s *OrderService) UpdateOrder(ctx context.Context, actor Actor, id uuid.UUID, input *UpdateOrderInput) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status.IsTerminal() {
		return nil, apperror.NewInvalidStateError(fmt.Sprintf("Cannot update a %s order", order.Status))
	}

	if input.Items != nil {
		if len(input.Items) == 0 {
			return nil, apperror.NewBadRequestError("Order must contain at least one item")
		}
		items, _, err := s.resolveItems(ctx, actor, input.Items)
		if err != nil {
			return nil, err
		}
		if err := s.orderRepo.ReplaceItems(ctx, order.ID, items); err != nil {
			return nil, err
		}
		order.Items = items
	}

	if input.OrderType != nil {
		order.OrderType = *input.OrderType
	}
	if input.Discount != nil {
		order.Discount = pricing.ToPaise(*input.Discount)
	}
	if input.CustomerName != nil {
		order.CustomerName = input.CustomerName
	}
	if input.TableNumber != nil {
		order.TableNumber = input.TableNumber
	}
	if input.Notes != nil {
		order.Notes = input.Notes
	}

	lineTotals := make([]int64, len(order.Items))
	for i, item := range order.Items {
		lineTotals[i] = item.SubTotal
	}
	totals := s.policy.OrderTotals(lineTotals, order.Discount)
	order.SubTotal = totals.SubTotal
	order.Tax = totals.Tax
	order.Discount = totals.Discount
	order.TotalAmount = totals.TotalAmount

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateOrderStatus transitions an order's status
func (s *OrderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status.IsTerminal() {
		return nil, apperror.NewInvalidStateError(fmt.Sprintf("Cannot change status of a %s order", order.Status))
	}

	var completedAt *time.Time
	if status == enum.OrderStatusCompleted {
		now := time.Now()
		completedAt = &now
	}
	if err := s.orderRepo.UpdateStatus(ctx, id, status, completedAt); err != nil {
		return nil, err
	}
	return s.orderRepo.GetWithItems(ctx, id)
}

// DeleteOrder removes a pending order
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return apperror.NewNotFoundError("Order")
	}
	if order.Status == enum.OrderStatusCompleted {
		return apperror.NewInvalidStateError("Cannot delete a COMPLETED order")
	}
	return s.orderRepo.Delete(ctx, id)
}

// GetOrderStats returns counts and revenue for the window
func (s *OrderService) GetOrderStats(ctx context.Context, start, end time.Time) (*repository.OrderStats, error) {
	return s.orderRepo.Stats(ctx, start, end)
}

// resolveItems batch-fetches the requested foods, enforces availability and
// franchise access, and builds priced item snapshots.
func (s *OrderService) resolveItems(ctx context.Context, actor Actor, inputs []OrderItemInput) ([]entity.OrderItem, []int64, error) {
	foodIDs := make([]uuid.UUID, len(inputs))
	for i, item := range inputs {
		if item.Quantity <= 0 {
			return nil, nil, apperror.NewBadRequestError("Item quantity must be at least 1")
		}
		foodIDs[i] = item.FoodID
	}

	foods, err := s.foodRepo.GetByIDs(ctx, foodIDs)
	if err != nil {
		return nil, nil, err
	}
	foodMap := make(map[uuid.UUID]*entity.Food, len(foods))
	for i := range foods {
		foodMap[foods[i].ID] = &foods[i]
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	lineTotals := make([]int64, 0, len(inputs))
	for _, input := range inputs {
		food, exists := foodMap[input.FoodID]
		if !exists {
			return nil, nil, apperror.NewNotFoundError(fmt.Sprintf("Food item %s", input.FoodID))
		}
		if !actor.IsSuperAdmin() && !food.AccessibleBy(actor.FranchiseID) {
			return nil, nil, apperror.NewForbiddenError("Food item does not belong to your franchise")
		}
		if !food.IsAvailable {
			return nil, nil, apperror.NewUnavailableError(food.Name)
		}

		subTotal := pricing.LineTotal(food.Price, input.Quantity)
		items = append(items, entity.OrderItem{
			FoodID:              food.ID,
			FoodName:            food.Name,
			Quantity:            input.Quantity,
			Price:               food.Price,
			SubTotal:            subTotal,
			SpecialInstructions: input.SpecialInstructions,
		})
		lineTotals = append(lineTotals, subTotal)
	}
	return items, lineTotals, nil
}

// nextOrderNumber builds the franchise-coded sequential order number
func (s *OrderService) nextOrderNumber(ctx context.Context, franchiseID *uuid.UUID) (string, error) {
	code := "XXXX"
	scope := "order:global"
	if franchiseID != nil {
		franchise, err := s.franchiseRepo.GetByID(ctx, *franchiseID)
		if err != nil {
			return "", err
		}
		if franchise != nil {
			code = franchise.OrderCode()
		}
		scope = "order:" + franchiseID.String()
	}

	seq, err := s.sequenceRepo.Next(ctx, scope)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%06d", code, seq), nil
}
