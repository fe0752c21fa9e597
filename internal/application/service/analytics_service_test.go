package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/application/pricing"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	infraRepo "github.com/restrobill/restrobill-api/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupAnalyticsTestDB(t *testing.T) *gorm.DB {
	db := setupOrderTestDB(t)
	if err := db.AutoMigrate(&entity.Expense{}, &entity.AnalyticsSnapshot{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func newAnalyticsTestService(db *gorm.DB) *AnalyticsService {
	return NewAnalyticsService(
		infraRepo.NewBillRepository(db),
		infraRepo.NewOrderRepository(db),
		infraRepo.NewExpenseRepository(db),
		infraRepo.NewAnalyticsRepository(db),
	)
}

// settleOrder creates an order for the given items and bills it with cash.
func settleOrder(t *testing.T, db *gorm.DB, ctx context.Context, actor Actor, items []OrderItemInput) *entity.Bill {
	orders, bills := newBillingTestServices(db, pricing.Policy{Mode: pricing.TaxModeFlat, FlatRate: 0})

	order, err := orders.CreateOrder(ctx, actor, &CreateOrderInput{
		OrderType: enum.OrderTypeDineIn,
		Items:     items,
	})
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}

	// No paid amount: settles at the exact bill total.
	bill, err := bills.GenerateBill(ctx, actor, &GenerateBillInput{
		OrderID:       order.ID,
		PaymentMethod: enum.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("Failed to generate bill: %v", err)
	}
	return bill
}

func TestGetSummaryEmptyWindow(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newAnalyticsTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	start := time.Now().AddDate(0, 0, -1)

	summary, err := svc.GetSummary(franchiseCtx(franchise.ID), start, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), summary.TotalOrders)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	assert.Equal(t, 0.0, summary.AverageOrderValue)
	assert.Empty(t, summary.PopularItems)
	assert.Empty(t, summary.PaymentMethods)
}

func TestGetSummaryAggregatesBillsAndExpenses(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newAnalyticsTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)
	samosa := seedFood(t, db, &franchise.ID, "Samosa", 15.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)

	settleOrder(t, db, ctx, actor, []OrderItemInput{{FoodID: tea.ID, Quantity: 2}})
	settleOrder(t, db, ctx, actor, []OrderItemInput{{FoodID: samosa.ID, Quantity: 4}})

	expense := &entity.Expense{
		FranchiseID: &franchise.ID,
		Category:    "INGREDIENTS",
		Amount:      1000,
		Description: "Milk supply",
		ExpenseDate: time.Now(),
		CreatedBy:   actor.UserID,
	}
	assert.NoError(t, db.Create(expense).Error)

	start := time.Now().AddDate(0, 0, -1)
	summary, err := svc.GetSummary(ctx, start, time.Now().Add(time.Hour))
	assert.NoError(t, err)

	// 2x20 + 4x15 = 100.00 revenue, 10.00 expenses
	assert.Equal(t, int64(2), summary.TotalOrders)
	assert.Equal(t, int64(2), summary.CompletedOrders)
	assert.Equal(t, 100.0, summary.TotalRevenue)
	assert.Equal(t, 10.0, summary.TotalExpenses)
	assert.Equal(t, 90.0, summary.NetProfit)
	assert.Equal(t, 50.0, summary.AverageOrderValue)
	assert.Equal(t, int64(2), summary.PaymentMethods["CASH"].Count)
	assert.Equal(t, int64(2), summary.OrderTypes["DINE_IN"])

	// Samosa sold more units than tea
	if assert.Len(t, summary.PopularItems, 2) {
		assert.Equal(t, "Samosa", summary.PopularItems[0].FoodName)
		assert.Equal(t, int64(4), summary.PopularItems[0].Quantity)
		assert.Equal(t, "Tea", summary.PopularItems[1].FoodName)
	}
}

func TestPopularItemsBreakTiesAlphabetically(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newAnalyticsTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)
	coffee := seedFood(t, db, &franchise.ID, "Coffee", 30.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)

	settleOrder(t, db, ctx, actor, []OrderItemInput{
		{FoodID: tea.ID, Quantity: 2},
		{FoodID: coffee.ID, Quantity: 2},
	})

	start := time.Now().AddDate(0, 0, -1)
	summary, err := svc.GetSummary(ctx, start, time.Now().Add(time.Hour))
	assert.NoError(t, err)
	if assert.Len(t, summary.PopularItems, 2) {
		assert.Equal(t, "Coffee", summary.PopularItems[0].FoodName)
		assert.Equal(t, "Tea", summary.PopularItems[1].FoodName)
	}
}

func TestGetSummaryScopedToFranchise(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newAnalyticsTestService(db)

	mine := seedFranchise(t, db, "Chai Point")
	other := seedFranchise(t, db, "Dosa Plaza")
	tea := seedFood(t, db, &mine.ID, "Tea", 20.00, true)
	dosa := seedFood(t, db, &other.ID, "Masala Dosa", 80.00, true)

	mineActor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &mine.ID}
	otherActor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &other.ID}

	settleOrder(t, db, franchiseCtx(mine.ID), mineActor, []OrderItemInput{{FoodID: tea.ID, Quantity: 1}})
	settleOrder(t, db, franchiseCtx(other.ID), otherActor, []OrderItemInput{{FoodID: dosa.ID, Quantity: 1}})

	start := time.Now().AddDate(0, 0, -1)
	end := time.Now().Add(time.Hour)

	mineSummary, err := svc.GetSummary(franchiseCtx(mine.ID), start, end)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, mineSummary.TotalRevenue)
	assert.Equal(t, int64(1), mineSummary.TotalOrders)

	superCtx := infraRepo.WithSkipFranchiseScope(context.Background(), true)
	allSummary, err := svc.GetSummary(superCtx, start, end)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, allSummary.TotalRevenue)
	assert.Equal(t, int64(2), allSummary.TotalOrders)
}

func TestGetDailyTrendsZeroFilled(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newAnalyticsTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	settleOrder(t, db, ctx, actor, []OrderItemInput{{FoodID: tea.ID, Quantity: 1}})

	points, err := svc.GetDailyTrends(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, points, 7)

	// Buckets run oldest to newest, last one being today
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, today, points[6].Label)
	assert.True(t, points[0].Label < points[6].Label)
	assert.Equal(t, int64(1), points[6].Orders)
	assert.Equal(t, 20.0, points[6].Revenue)
	for _, p := range points[:6] {
		assert.Equal(t, int64(0), p.Orders)
	}
}

func TestGetMonthlyTrendsTwelveBuckets(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newAnalyticsTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	settleOrder(t, db, ctx, actor, []OrderItemInput{{FoodID: tea.ID, Quantity: 2}})

	points, err := svc.GetMonthlyTrends(ctx, time.Now().Year())
	assert.NoError(t, err)
	assert.Len(t, points, 12)
	assert.Equal(t, "January", points[0].Label)
	assert.Equal(t, "December", points[11].Label)

	current := int(time.Now().Month()) - 1
	assert.Equal(t, int64(1), points[current].Orders)
	assert.Equal(t, 40.0, points[current].Revenue)
}

func TestGetCategorySalesBucketsDeletedFoodsAsUnknown(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newAnalyticsTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	settleOrder(t, db, ctx, actor, []OrderItemInput{{FoodID: tea.ID, Quantity: 3}})

	start := time.Now().AddDate(0, 0, -1)
	end := time.Now().Add(time.Hour)

	results, err := svc.GetCategorySales(ctx, start, end)
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "BEVERAGES", results[0].Category)
		assert.Equal(t, int64(3), results[0].ItemsSold)
		assert.Equal(t, 60.0, results[0].TotalRevenue)
	}

	// The billed snapshot survives the menu item's deletion
	assert.NoError(t, db.Delete(tea).Error)

	results, err = svc.GetCategorySales(ctx, start, end)
	assert.NoError(t, err)
	if assert.Len(t, results, 1) {
		assert.Equal(t, "UNKNOWN", results[0].Category)
		assert.Equal(t, int64(3), results[0].ItemsSold)
	}
}

func TestGenerateSnapshotIsIdempotentPerDay(t *testing.T) {
	db := setupAnalyticsTestDB(t)
	svc := newAnalyticsTestService(db)

	franchise := seedFranchise(t, db, "Chai Point")
	tea := seedFood(t, db, &franchise.ID, "Tea", 20.00, true)

	actor := Actor{UserID: uuid.New(), Role: enum.RoleFranchiseAdmin, FranchiseID: &franchise.ID}
	ctx := franchiseCtx(franchise.ID)
	settleOrder(t, db, ctx, actor, []OrderItemInput{{FoodID: tea.ID, Quantity: 1}})

	first, err := svc.GenerateSnapshot(ctx, actor, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, int64(1), first.TotalOrders)
	assert.Equal(t, int64(2000), first.TotalRevenue)

	settleOrder(t, db, ctx, actor, []OrderItemInput{{FoodID: tea.ID, Quantity: 1}})
	_, err = svc.GenerateSnapshot(ctx, actor, time.Now())
	assert.NoError(t, err)

	snapshots, err := svc.ListSnapshots(ctx, actor, 10)
	assert.NoError(t, err)
	if assert.Len(t, snapshots, 1) {
		assert.Equal(t, int64(2), snapshots[0].TotalOrders)
		assert.Equal(t, int64(4000), snapshots[0].TotalRevenue)
	}
}

func TestResolveWindowValidation(t *testing.T) {
	_, _, err := ResolveWindow("", "2026-02-10", "2026-02-01")
	assert.Error(t, err)

	start, end, err := ResolveWindow("", "2026-02-01", "2026-02-10")
	assert.NoError(t, err)
	assert.Equal(t, 2026, start.Year())
	assert.Equal(t, time.February, start.Month())
	assert.Equal(t, 1, start.Day())
	// end date is inclusive through the end of the day
	assert.Equal(t, 10, end.Day())
	assert.Equal(t, 23, end.Hour())

	_, _, err = ResolveWindow("", "10-02-2026", "")
	assert.Error(t, err)
}

func TestResolveWindowPeriods(t *testing.T) {
	now := time.Now()

	// week covers the last 7 calendar days from midnight, today included
	start, _, err := ResolveWindow("week", "", "")
	assert.NoError(t, err)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, now.AddDate(0, 0, -6).Day(), start.Day())

	// monthly and yearly are synonyms for month and year
	start, _, err = ResolveWindow("monthly", "", "")
	assert.NoError(t, err)
	assert.Equal(t, now.Month(), start.Month())
	assert.Equal(t, 1, start.Day())

	start, end, err := ResolveWindow("yearly", "", "")
	assert.NoError(t, err)
	assert.Equal(t, time.January, start.Month())
	assert.Equal(t, 1, start.Day())
	assert.Equal(t, time.December, end.Month())
	assert.Equal(t, 31, end.Day())
	assert.Equal(t, 23, end.Hour())
}
