package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restrobill/restrobill-api/internal/config"
	"github.com/restrobill/restrobill-api/internal/domain/enum"
	domainRepo "github.com/restrobill/restrobill-api/internal/domain/repository"
	"github.com/restrobill/restrobill-api/internal/presentation/http/handler"
	"github.com/restrobill/restrobill-api/internal/presentation/http/middleware"
	"github.com/restrobill/restrobill-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Franchise *handler.FranchiseHandler
	Food      *handler.FoodHandler
	Order     *handler.OrderHandler
	Bill      *handler.BillHandler
	Expense   *handler.ExpenseHandler
	Analytics *handler.AnalyticsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewFranchiseRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/verify-otp", h.Auth.VerifyOTP)
		auth.POST("/resend-otp", h.Auth.ResendOTP)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	superAdmin := string(enum.RoleSuperAdmin)

	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Profile)

	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	// Franchise management is reserved for the super admin
	franchises := protected.Group("/franchises")
	{
		franchises.POST("", middleware.RequireRole(superAdmin), h.Franchise.Create)
		franchises.GET("", middleware.RequireRole(superAdmin), h.Franchise.List)
		franchises.GET("/:id", h.Franchise.Get)
		franchises.PUT("/:id", middleware.RequireRole(superAdmin), h.Franchise.Update)
		franchises.PATCH("/:id/status", middleware.RequireRole(superAdmin), h.Franchise.SetStatus)
		franchises.DELETE("/:id", middleware.RequireRole(superAdmin), h.Franchise.Delete)
	}

	foods := protected.Group("/foods")
	{
		foods.POST("", h.Food.Create)
		foods.GET("", h.Food.List)
		foods.GET("/:id", h.Food.Get)
		foods.PUT("/:id", h.Food.Update)
		foods.PATCH("/:id/availability", h.Food.SetAvailability)
		foods.DELETE("/:id", h.Food.Delete)
	}

	orders := protected.Group("/orders")
	{
		orders.POST("", idempotency, h.Order.Create)
		orders.GET("", h.Order.List)
		orders.GET("/stats", h.Order.Stats)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.PATCH("/:id/status", h.Order.UpdateStatus)
		orders.DELETE("/:id", h.Order.Delete)
	}

	bills := protected.Group("/bills")
	{
		bills.POST("", idempotency, h.Bill.Generate)
		bills.GET("", h.Bill.List)
		bills.GET("/:id", h.Bill.Get)
		bills.DELETE("/:id", middleware.RequireRole(superAdmin), h.Bill.Delete)
	}

	expenses := protected.Group("/expenses")
	{
		expenses.POST("", h.Expense.Create)
		expenses.GET("", h.Expense.List)
		expenses.GET("/stats", h.Expense.Stats)
		expenses.GET("/:id", h.Expense.Get)
		expenses.PUT("/:id", h.Expense.Update)
		expenses.DELETE("/:id", h.Expense.Delete)
	}

	analytics := protected.Group("/analytics")
	{
		analytics.GET("/summary", h.Analytics.Summary)
		analytics.GET("/trends/daily", h.Analytics.DailyTrends)
		analytics.GET("/trends/monthly", h.Analytics.MonthlyTrends)
		analytics.GET("/category-sales", h.Analytics.CategorySales)
		analytics.GET("/revenue", h.Analytics.RevenueReport)
		analytics.GET("/dashboard", h.Analytics.Dashboard)
		analytics.POST("/snapshots", h.Analytics.GenerateSnapshot)
		analytics.GET("/snapshots", h.Analytics.ListSnapshots)
	}
}
