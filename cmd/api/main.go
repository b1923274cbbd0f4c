package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rgsalon/salonpos-api/internal/application/service"
	"github.com/rgsalon/salonpos-api/internal/config"
	"github.com/rgsalon/salonpos-api/internal/infrastructure/cache"
	"github.com/rgsalon/salonpos-api/internal/infrastructure/database"
	"github.com/rgsalon/salonpos-api/internal/infrastructure/repository"
	"github.com/rgsalon/salonpos-api/internal/presentation/http/handler"
	"github.com/rgsalon/salonpos-api/internal/presentation/http/routes"
	"github.com/rgsalon/salonpos-api/pkg/logger"
	"github.com/rgsalon/salonpos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.Get()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	clientRepo := repository.NewClientRepository(db)
	pendingRepo := repository.NewPendingPaymentRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	tierRepo := repository.NewMembershipTierRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Order list snapshot cache; list reads survive short database outages
	snapshotCache := cache.NewSnapshotCache(
		cfg.Redis.Addr,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.SnapshotTTL,
	)
	if err := snapshotCache.Ping(context.Background()); err != nil {
		log.WithError(err).Warn("Redis unreachable; order list snapshots disabled until it returns")
	}

	// Initialize services
	billing := service.NewBillingService()
	aggregator := service.NewAggregatorService()
	authService := service.NewAuthService(userRepo, profileRepo, jwtManager)
	clientService := service.NewClientService(clientRepo, pendingRepo, orderRepo, appointmentRepo, log)
	orderService := service.NewOrderService(
		orderRepo, orderItemRepo, appointmentRepo,
		tierRepo, memberRepo, productRepo, profileRepo,
		clientService, billing, snapshotCache, log,
	)
	appointmentService := service.NewAppointmentService(appointmentRepo, aggregator)
	membershipService := service.NewMembershipService(tierRepo, memberRepo)
	productService := service.NewProductService(productRepo)
	exportService := service.NewExportService(orderRepo, aggregator, billing)
	dashboardService := service.NewDashboardService(orderRepo, billing)

	// WhatsApp reminders for due BNPL balances
	if cfg.Reminder.Enabled {
		reminderService := service.NewReminderService(clientRepo, cfg.Twilio, cfg.Reminder.Schedule, log)
		if err := reminderService.StartScheduler(); err != nil {
			log.WithError(err).Error("Failed to start reminder scheduler")
		} else {
			defer reminderService.Stop()
		}
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Client:      handler.NewClientHandler(clientService),
		Order:       handler.NewOrderHandler(orderService, aggregator),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Membership:  handler.NewMembershipHandler(membershipService),
		Product:     handler.NewProductHandler(productService),
		Export:      handler.NewExportHandler(exportService),
		Dashboard:   handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        log,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.WithField("port", port).Infof("Starting %s server", cfg.App.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Forced shutdown")
	}
	if err := snapshotCache.Close(); err != nil {
		log.WithError(err).Warn("Error closing Redis connection")
	}
}
