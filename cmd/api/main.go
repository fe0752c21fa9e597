package main

import (
	"github.com/gin-gonic/gin"
	"github.com/restrobill/restrobill-api/internal/application/pricing"
	"github.com/restrobill/restrobill-api/internal/application/service"
	"github.com/restrobill/restrobill-api/internal/config"
	"github.com/restrobill/restrobill-api/internal/infrastructure/database"
	"github.com/restrobill/restrobill-api/internal/infrastructure/repository"
	"github.com/restrobill/restrobill-api/internal/presentation/http/handler"
	"github.com/restrobill/restrobill-api/internal/presentation/http/middleware"
	"github.com/restrobill/restrobill-api/internal/presentation/http/routes"
	"github.com/restrobill/restrobill-api/pkg/sms"
	"github.com/restrobill/restrobill-api/pkg/utils"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.App.Debug)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Warn().Err(err).Msg("failed to seed default data")
	}

	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	policy := pricing.Policy{
		Mode:     pricing.TaxMode(cfg.Billing.TaxMode),
		FlatRate: cfg.Billing.FlatRate,
		CGSTRate: cfg.Billing.CGSTRate,
		SGSTRate: cfg.Billing.SGSTRate,
	}

	var smsSender sms.Sender
	if cfg.SMS.APIKey != "" {
		smsSender = sms.NewFast2SMSSender(sms.Config{
			APIKey:  cfg.SMS.APIKey,
			BaseURL: cfg.SMS.BaseURL,
		})
	} else {
		log.Warn().Msg("SMS_API_KEY not set, OTPs will be logged instead of sent")
		smsSender = sms.NewNullSender()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	franchiseRepo := repository.NewFranchiseRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	billRepo := repository.NewBillRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, franchiseRepo, jwtManager, smsSender)
	franchiseService := service.NewFranchiseService(franchiseRepo)
	foodService := service.NewFoodService(foodRepo)
	orderService := service.NewOrderService(orderRepo, foodRepo, franchiseRepo, sequenceRepo, policy)
	billingService := service.NewBillingService(billRepo, orderRepo, franchiseRepo, sequenceRepo, policy)
	expenseService := service.NewExpenseService(expenseRepo)
	analyticsService := service.NewAnalyticsService(billRepo, orderRepo, expenseRepo, analyticsRepo)

	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Franchise: handler.NewFranchiseHandler(franchiseService),
		Food:      handler.NewFoodHandler(foodService),
		Order:     handler.NewOrderHandler(orderService),
		Bill:      handler.NewBillHandler(billingService),
		Expense:   handler.NewExpenseHandler(expenseService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("service", cfg.App.Name).Str("port", port).Str("env", cfg.App.Env).Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
