package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restrobill/restrobill-api/internal/application/service"
	"github.com/restrobill/restrobill-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler handles analytics HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Summary returns the aggregate report for a window
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	start, end, err := service.ResolveWindow(c.Query("period"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	summary, err := h.analyticsService.GetSummary(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics summary retrieved successfully", summary)
}

// DailyTrends returns zero-filled per-day buckets, oldest first
func (h *AnalyticsHandler) DailyTrends(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	trends, err := h.analyticsService.GetDailyTrends(c.Request.Context(), days)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily trends retrieved successfully", trends)
}

// MonthlyTrends returns January through December buckets for a year
func (h *AnalyticsHandler) MonthlyTrends(c *gin.Context) {
	year, _ := strconv.Atoi(c.Query("year"))

	trends, err := h.analyticsService.GetMonthlyTrends(c.Request.Context(), year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Monthly trends retrieved successfully", trends)
}

// CategorySales returns billed sales grouped by food category
func (h *AnalyticsHandler) CategorySales(c *gin.Context) {
	start, end, err := service.ResolveWindow(c.Query("period"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	sales, err := h.analyticsService.GetCategorySales(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category sales retrieved successfully", sales)
}

// RevenueReport returns bucketed revenue for a window
func (h *AnalyticsHandler) RevenueReport(c *gin.Context) {
	start, end, err := service.ResolveWindow(c.Query("period"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.analyticsService.GetRevenueReport(c.Request.Context(), start, end, c.Query("group_by"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Revenue report retrieved successfully", report)
}

// Dashboard returns today's summary plus recent bills
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.analyticsService.GetDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", dashboard)
}

// GenerateSnapshot computes and stores the daily analytics snapshot
func (h *AnalyticsHandler) GenerateSnapshot(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	date := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			response.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	snapshot, err := h.analyticsService.GenerateSnapshot(c.Request.Context(), *actor, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Snapshot generated successfully", snapshot)
}

// ListSnapshots returns the caller's saved snapshots, newest first
func (h *AnalyticsHandler) ListSnapshots(c *gin.Context) {
	actor := GetActor(c)
	if actor == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	snapshots, err := h.analyticsService.ListSnapshots(c.Request.Context(), *actor, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Snapshots retrieved successfully", snapshots)
}
