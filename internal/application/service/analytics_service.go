package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
	"github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/restrobill/restrobill-api/pkg/apperror"
	"github.com/restrobill/restrobill-api/pkg/pagination"
)

var pageOfTen = pagination.PaginationParams{Page: 1, PerPage: 10}

// AnalyticsService computes revenue, trend and category reports
type AnalyticsService struct {
	billRepo      repository.BillRepository
	orderRepo     repository.OrderRepository
	expenseRepo   repository.ExpenseRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	billRepo repository.BillRepository,
	orderRepo repository.OrderRepository,
	expenseRepo repository.ExpenseRepository,
	analyticsRepo repository.AnalyticsRepository,
) *AnalyticsService {
	return &AnalyticsService{
		billRepo:      billRepo,
		orderRepo:     orderRepo,
		expenseRepo:   expenseRepo,
		analyticsRepo: analyticsRepo,
	}
}

const dateLayout = "2006-01-02"

// ResolveWindow turns a period token or explicit date pair into a time
// window. Known tokens: today, week, 7days, month, monthly, year, yearly.
// Anything else, including an empty period without dates, falls back to
// the last 30 days.
func ResolveWindow(period, startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if period != "" {
		switch period {
		case "today":
			return midnight, midnight.AddDate(0, 0, 1), nil
		case "week", "7days":
			// last 7 calendar days, today included
			return midnight.AddDate(0, 0, -6), now, nil
		case "month", "monthly":
			start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
			return start, start.AddDate(0, 1, 0), nil
		case "year", "yearly":
			start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
			return start, start.AddDate(1, 0, 0).Add(-time.Nanosecond), nil
		default:
			return now.AddDate(0, 0, -30), now, nil
		}
	}

	start := now.AddDate(0, 0, -30)
	end := now
	if startStr != "" {
		parsed, err := time.ParseInLocation(dateLayout, startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, apperror.NewBadRequestError("Invalid startDate, expected YYYY-MM-DD")
		}
		start = parsed
	}
	if endStr != "" {
		parsed, err := time.ParseInLocation(dateLayout, endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, apperror.NewBadRequestError("Invalid endDate, expected YYYY-MM-DD")
		}
		// inclusive end of day
		end = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, apperror.NewBadRequestError("endDate must not be before startDate")
	}
	return start, end, nil
}

// PopularItem is a menu item ranked by billed quantity
type PopularItem struct {
	FoodID     uuid.UUID `json:"food_id"`
	FoodName   string    `json:"food_name"`
	Quantity   int64     `json:"quantity"`
	Revenue    float64   `json:"revenue"`
	OrderCount int64     `json:"order_count"`
}

// MethodBreakdown aggregates bills per payment method
type MethodBreakdown struct {
	Count  int64   `json:"count"`
	Amount float64 `json:"amount"`
}

// Summary is the aggregate report over a window
type Summary struct {
	TotalOrders       int64                      `json:"total_orders"`
	CompletedOrders   int64                      `json:"completed_orders"`
	PendingOrders     int64                      `json:"pending_orders"`
	CancelledOrders   int64                      `json:"cancelled_orders"`
	TotalRevenue      float64                    `json:"total_revenue"`
	TotalExpenses     float64                    `json:"total_expenses"`
	NetProfit         float64                    `json:"net_profit"`
	AverageOrderValue float64                    `json:"average_order_value"`
	PaymentMethods    map[string]MethodBreakdown `json:"payment_methods"`
	OrderTypes        map[string]int64           `json:"order_types"`
	PopularItems      []PopularItem              `json:"popular_items"`
}

// GetSummary folds billed activity, order counts and expenses for the window
func (s *AnalyticsService) GetSummary(ctx context.Context, start, end time.Time) (*Summary, error) {
	bills, err := s.billRepo.ListInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	stats, err := s.orderRepo.Stats(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expensesPaise, err := s.expenseRepo.SumInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalOrders:     stats.TotalOrders,
		CompletedOrders: stats.CompletedOrders,
		PendingOrders:   stats.PendingOrders,
		CancelledOrders: stats.CancelledOrders,
		TotalExpenses:   float64(expensesPaise) / 100,
		PaymentMethods:  make(map[string]MethodBreakdown),
		OrderTypes:      make(map[string]int64),
	}

	var revenuePaise int64
	for i := range bills {
		bill := &bills[i]
		revenuePaise += bill.TotalAmount

		method := summary.PaymentMethods[bill.PaymentMethod.String()]
		method.Count++
		method.Amount += float64(bill.TotalAmount) / 100
		summary.PaymentMethods[bill.PaymentMethod.String()] = method

		if bill.Order != nil {
			summary.OrderTypes[bill.Order.OrderType.String()]++
		}
	}
	summary.TotalRevenue = float64(revenuePaise) / 100
	summary.NetProfit = summary.TotalRevenue - summary.TotalExpenses
	if len(bills) > 0 {
		summary.AverageOrderValue = summary.TotalRevenue / float64(len(bills))
	}
	summary.PopularItems = popularItems(bills, 10)

	return summary, nil
}

// popularItems ranks billed items by quantity, breaking ties by name
func popularItems(bills []entity.Bill, limit int) []PopularItem {
	stats := make(map[uuid.UUID]*PopularItem)
	for i := range bills {
		if bills[i].Order == nil {
			continue
		}
		for _, item := range bills[i].Order.Items {
			entry, ok := stats[item.FoodID]
			if !ok {
				entry = &PopularItem{FoodID: item.FoodID, FoodName: item.FoodName}
				stats[item.FoodID] = entry
			}
			entry.Quantity += int64(item.Quantity)
			entry.Revenue += float64(item.SubTotal) / 100
			entry.OrderCount++
		}
	}

	items := make([]PopularItem, 0, len(stats))
	for _, entry := range stats {
		items = append(items, *entry)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].FoodName < items[j].FoodName
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

// TrendPoint is a revenue/order count bucket in a trend series
type TrendPoint struct {
	Label   string  `json:"label"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// GetDailyTrends returns one zero-filled bucket per day, oldest first
func (s *AnalyticsService) GetDailyTrends(ctx context.Context, days int) ([]TrendPoint, error) {
	if days <= 0 {
		days = 7
	}
	now := time.Now()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	start := end.AddDate(0, 0, -days)

	bills, err := s.billRepo.ListInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		label := day.Format(dateLayout)
		points[i] = TrendPoint{Label: label}
		index[label] = i
	}

	for i := range bills {
		label := bills[i].PaidAt.In(now.Location()).Format(dateLayout)
		if pos, ok := index[label]; ok {
			points[pos].Orders++
			points[pos].Revenue += float64(bills[i].TotalAmount) / 100
		}
	}
	return points, nil
}

// GetMonthlyTrends returns twelve buckets, January through December
func (s *AnalyticsService) GetMonthlyTrends(ctx context.Context, year int) ([]TrendPoint, error) {
	now := time.Now()
	if year <= 0 {
		year = now.Year()
	}
	start := time.Date(year, 1, 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(1, 0, 0)

	bills, err := s.billRepo.ListInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}

	points := make([]TrendPoint, 12)
	for m := 0; m < 12; m++ {
		points[m] = TrendPoint{Label: time.Month(m + 1).String()}
	}
	for i := range bills {
		m := int(bills[i].PaidAt.In(now.Location()).Month()) - 1
		points[m].Orders++
		points[m].Revenue += float64(bills[i].TotalAmount) / 100
	}
	return points, nil
}

// GetCategorySales aggregates billed sales per food category
func (s *AnalyticsService) GetCategorySales(ctx context.Context, start, end time.Time) ([]repository.CategorySalesResult, error) {
	return s.analyticsRepo.CategorySales(ctx, start, end)
}

// RevenueReport groups billed revenue over a window
type RevenueReport struct {
	GroupBy      string       `json:"group_by"`
	TotalRevenue float64      `json:"total_revenue"`
	TotalBills   int64        `json:"total_bills"`
	Buckets      []TrendPoint `json:"buckets"`
}

// GetRevenueReport buckets revenue by day, ISO week start or month
func (s *AnalyticsService) GetRevenueReport(ctx context.Context, start, end time.Time, groupBy string) (*RevenueReport, error) {
	switch groupBy {
	case "daily", "weekly", "monthly":
	case "":
		groupBy = "daily"
	default:
		return nil, apperror.NewBadRequestError("groupBy must be daily, weekly or monthly")
	}

	bills, err := s.billRepo.ListInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &RevenueReport{GroupBy: groupBy}
	buckets := make(map[string]*TrendPoint)
	loc := time.Now().Location()

	for i := range bills {
		paidAt := bills[i].PaidAt.In(loc)
		var label string
		switch groupBy {
		case "daily":
			label = paidAt.Format(dateLayout)
		case "weekly":
			weekStart := paidAt.AddDate(0, 0, -int(paidAt.Weekday()))
			label = weekStart.Format(dateLayout)
		case "monthly":
			label = paidAt.Format("2006-01")
		}

		point, ok := buckets[label]
		if !ok {
			point = &TrendPoint{Label: label}
			buckets[label] = point
		}
		point.Orders++
		point.Revenue += float64(bills[i].TotalAmount) / 100

		report.TotalBills++
		report.TotalRevenue += float64(bills[i].TotalAmount) / 100
	}

	report.Buckets = make([]TrendPoint, 0, len(buckets))
	for _, point := range buckets {
		report.Buckets = append(report.Buckets, *point)
	}
	sort.Slice(report.Buckets, func(i, j int) bool {
		return report.Buckets[i].Label < report.Buckets[j].Label
	})
	return report, nil
}

// Dashboard is the landing page summary
type Dashboard struct {
	Today       *Summary      `json:"today"`
	RecentBills []entity.Bill `json:"recent_bills"`
}

// GetDashboard returns today's summary plus the ten most recent bills
func (s *AnalyticsService) GetDashboard(ctx context.Context) (*Dashboard, error) {
	start, end, err := ResolveWindow("today", "", "")
	if err != nil {
		return nil, err
	}

	today, err := s.GetSummary(ctx, start, end)
	if err != nil {
		return nil, err
	}

	bills, _, err := s.billRepo.List(ctx, &repository.BillFilterParams{
		Pagination: &pageOfTen,
	})
	if err != nil {
		return nil, err
	}

	return &Dashboard{Today: today, RecentBills: bills}, nil
}

// GenerateSnapshot computes and persists the daily snapshot for the actor
func (s *AnalyticsService) GenerateSnapshot(ctx context.Context, actor Actor, date time.Time) (*entity.AnalyticsSnapshot, error) {
	loc := time.Now().Location()
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	summary, err := s.GetSummary(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	popular, err := json.Marshal(summary.PopularItems)
	if err != nil {
		return nil, err
	}

	snapshot := &entity.AnalyticsSnapshot{
		Date:         day,
		GeneratedBy:  actor.UserID,
		FranchiseID:  actor.FranchiseID,
		TotalOrders:  summary.TotalOrders,
		TotalRevenue: int64(summary.TotalRevenue * 100),
		PopularItems: string(popular),
	}
	if err := s.analyticsRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// ListSnapshots returns the actor's saved snapshots, newest first
func (s *AnalyticsService) ListSnapshots(ctx context.Context, actor Actor, limit int) ([]entity.AnalyticsSnapshot, error) {
	return s.analyticsRepo.ListSnapshots(ctx, actor.UserID, limit)
}
