package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/application/pricing"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	infraRepo "github.com/restrobill/restrobill-api/internal/infrastructure/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func rupees(v float64) *float64 { return &v }

func newBillingTestServices(db *gorm.DB, policy pricing.Policy) (*OrderService, *BillingService) {
	orderRepo := infraRepo.NewOrderRepository(db)
	franchiseRepo := infraRepo.NewFranchiseRepository(db)
	sequenceRepo := infraRepo.NewSequenceRepository(db)
	orders := NewOrderService(orderRepo, infraRepo.NewFoodRepository(db), franchiseRepo, sequenceRepo, policy)
	bills := NewBillingService(infraRepo.NewBillRepository(db), orderRepo, franchiseRepo, sequenceRepo, policy)
	return orders, bills
}

func TestGenerateBillSettlesOrder(t *testing.T) {
	db := setupOrderTestDB(t)
	policy := pricing.Policy{Mode: pricing.TaxModeFlat, FlatRate: 0.05}
	orders, bills := newBillingTestServices(db, policy)

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	order, err := orders.CreateOrder(ctx, actor, &CreateOrderInput{
		OrderType: enum.OrderTypeDineIn,
		Items:     []OrderItemInput{{FoodID: tea.ID, Quantity: 3}},
	})
	assert.NoError(t, err)

	bill, err := bills.GenerateBill(ctx, actor, &GenerateBillInput{
		OrderID:       order.ID,
		PaymentMethod: enum.PaymentMethodUPI,
		PaidAmount:    rupees(100.00),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(6000), bill.SubTotal)
	assert.Equal(t, int64(300), bill.Tax)
	assert.Equal(t, int64(6300), bill.TotalAmount)
	assert.Equal(t, int64(10000), bill.PaidAmount)
	assert.Equal(t, int64(3700), bill.ChangeAmount)
	assert.Equal(t, enum.PaymentMethodUPI, bill.PaymentMethod)

	// Settling flips the order to completed and paid
	settled, err := orders.GetOrder(ctx, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCompleted, settled.Status)
	assert.Equal(t, enum.PaymentStatusPaid, settled.PaymentStatus)
	assert.NotNil(t, settled.CompletedAt)
}

func TestGenerateBillSplitsGST(t *testing.T) {
	db := setupOrderTestDB(t)
	policy := pricing.Policy{Mode: pricing.TaxModeSplit, CGSTRate: 0.025, SGSTRate: 0.025}
	orders, bills := newBillingTestServices(db, policy)

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	order, err := orders.CreateOrder(ctx, actor, &CreateOrderInput{
		OrderType: enum.OrderTypeDineIn,
		Items:     []OrderItemInput{{FoodID: tea.ID, Quantity: 3}},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), order.Tax)

	bill, err := bills.GenerateBill(ctx, actor, &GenerateBillInput{
		OrderID:       order.ID,
		PaymentMethod: enum.PaymentMethodCash,
		PaidAmount:    rupees(63.00),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(150), bill.CGST)
	assert.Equal(t, int64(150), bill.SGST)
	assert.Equal(t, int64(300), bill.Tax)
	assert.Equal(t, int64(6300), bill.TotalAmount)
	assert.Equal(t, int64(0), bill.ChangeAmount)
}

func TestGenerateBillDefaultsPaidToTotal(t *testing.T) {
	db := setupOrderTestDB(t)
	policy := pricing.Policy{Mode: pricing.TaxModeFlat, FlatRate: 0.05}
	orders, bills := newBillingTestServices(db, policy)

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	order, err := orders.CreateOrder(ctx, actor, &CreateOrderInput{
		OrderType: enum.OrderTypeDineIn,
		Items:     []OrderItemInput{{FoodID: tea.ID, Quantity: 3}},
	})
	assert.NoError(t, err)

	bill, err := bills.GenerateBill(ctx, actor, &GenerateBillInput{
		OrderID:       order.ID,
		PaymentMethod: enum.PaymentMethodUPI,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(6300), bill.TotalAmount)
	assert.Equal(t, int64(6300), bill.PaidAmount)
	assert.Equal(t, int64(0), bill.ChangeAmount)
}

func TestGenerateBillRoundsPaidToPaise(t *testing.T) {
	db := setupOrderTestDB(t)
	orders, bills := newBillingTestServices(db, pricing.Policy{Mode: pricing.TaxModeFlat, FlatRate: 0})

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	order, err := orders.CreateOrder(ctx, actor, &CreateOrderInput{
		OrderType: enum.OrderTypeTakeaway,
		Items:     []OrderItemInput{{FoodID: tea.ID, Quantity: 1}},
	})
	assert.NoError(t, err)

	// 10.15 is not exactly representable; truncation would store 1014
	bill, err := bills.GenerateBill(ctx, actor, &GenerateBillInput{
		OrderID:       order.ID,
		PaymentMethod: enum.PaymentMethodCash,
		PaidAmount:    rupees(10.15),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1015), bill.PaidAmount)
}

func TestGenerateBillRejectsDuplicate(t *testing.T) {
	db := setupOrderTestDB(t)
	orders, bills := newBillingTestServices(db, pricing.DefaultPolicy())

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	order, err := orders.CreateOrder(ctx, actor, &CreateOrderInput{
		OrderType: enum.OrderTypeDineIn,
		Items:     []OrderItemInput{{FoodID: tea.ID, Quantity: 1}},
	})
	assert.NoError(t, err)

	input := &GenerateBillInput{OrderID: order.ID, PaymentMethod: enum.PaymentMethodCash, PaidAmount: rupees(50.00)}
	_, err = bills.GenerateBill(ctx, actor, input)
	assert.NoError(t, err)

	_, err = bills.GenerateBill(ctx, actor, input)
	assert.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestGenerateBillRejectsCancelledOrder(t *testing.T) {
	db := setupOrderTestDB(t)
	orders, bills := newBillingTestServices(db, pricing.DefaultPolicy())

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	order, err := orders.CreateOrder(ctx, actor, &CreateOrderInput{
		OrderType: enum.OrderTypeTakeaway,
		Items:     []OrderItemInput{{FoodID: tea.ID, Quantity: 1}},
	})
	assert.NoError(t, err)

	_, err = orders.UpdateOrderStatus(ctx, order.ID, enum.OrderStatusCancelled)
	assert.NoError(t, err)

	_, err = bills.GenerateBill(ctx, actor, &GenerateBillInput{
		OrderID:       order.ID,
		PaymentMethod: enum.PaymentMethodCash,
		PaidAmount:    rupees(50.00),
	})
	assert.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestBillNumbersUseBusinessPrefix(t *testing.T) {
	db := setupOrderTestDB(t)
	orders, bills := newBillingTestServices(db, pricing.DefaultPolicy())

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)

	for i, want := range []string{"CHA000001", "CHA000002"} {
		order, err := orders.CreateOrder(ctx, actor, &CreateOrderInput{
			OrderType: enum.OrderTypeDineIn,
			Items:     []OrderItemInput{{FoodID: tea.ID, Quantity: i + 1}},
		})
		assert.NoError(t, err)

		bill, err := bills.GenerateBill(ctx, actor, &GenerateBillInput{
			OrderID:       order.ID,
			PaymentMethod: enum.PaymentMethodCard,
			PaidAmount:    rupees(100.00),
		})
		assert.NoError(t, err)
		assert.Equal(t, want, bill.BillNumber)
	}
}

func TestGenerateBillFallsBackToOrderCustomerName(t *testing.T) {
	db := setupOrderTestDB(t)
	orders, bills := newBillingTestServices(db, pricing.DefaultPolicy())

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	name := "Asha"
	order, err := orders.CreateOrder(ctx, actor, &CreateOrderInput{
		OrderType:    enum.OrderTypeDineIn,
		Items:        []OrderItemInput{{FoodID: tea.ID, Quantity: 1}},
		CustomerName: &name,
	})
	assert.NoError(t, err)

	bill, err := bills.GenerateBill(ctx, actor, &GenerateBillInput{
		OrderID:       order.ID,
		PaymentMethod: enum.PaymentMethodCash,
		PaidAmount:    rupees(25.00),
	})
	assert.NoError(t, err)
	if assert.NotNil(t, bill.CustomerName) {
		assert.Equal(t, "Asha", *bill.CustomerName)
	}
}

func TestDeleteBillNotFound(t *testing.T) {
	db := setupOrderTestDB(t)
	_, bills := newBillingTestServices(db, pricing.DefaultPolicy())

	err := bills.DeleteBill(infraRepo.WithSkipFranchiseScope(context.Background(), true), uuid.New())
	assert.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
