package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rgsalon/salonpos-api/internal/config"
	"github.com/rgsalon/salonpos-api/internal/presentation/http/handler"
	"github.com/rgsalon/salonpos-api/internal/presentation/http/middleware"
	"github.com/rgsalon/salonpos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Client      *handler.ClientHandler
	Order       *handler.OrderHandler
	Appointment *handler.AppointmentHandler
	Membership  *handler.MembershipHandler
	Product     *handler.ProductHandler
	Export      *handler.ExportHandler
	Dashboard   *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Log        *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/auth/me", h.Auth.Me)

	clients := rg.Group("/clients")
	{
		clients.GET("", h.Client.List)
		clients.POST("", h.Client.Create)
		clients.GET("/:id", h.Client.Get)
		clients.PATCH("/:id", h.Client.Update)
		clients.DELETE("/:id", middleware.RequireRole("admin"), h.Client.Delete)
		clients.POST("/:id/pending-payments", h.Client.PayPending)
		clients.GET("/:id/pending-payments", h.Client.PendingHistory)
		clients.GET("/:id/memberships", h.Membership.ListClientMemberships)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Create)
		orders.POST("/appointment-payment", h.Order.PayAppointment)
		orders.DELETE("/purge", middleware.RequireRole("admin"), h.Order.DeleteRange)
		orders.GET("/export/csv", h.Export.ExportCSV)
		orders.GET("/export/xlsx", h.Export.ExportXLSX)
		orders.GET("/:id", h.Order.Get)
		orders.PATCH("/:id", h.Order.Update)
		orders.DELETE("/:id", middleware.RequireRole("admin"), h.Order.Delete)
		orders.POST("/:id/payments", h.Order.AddPayment)
		orders.GET("/:id/receipt", h.Export.Receipt)
		orders.GET("/:id/display-id", h.Export.DisplayID)
	}

	appointments := rg.Group("/appointments")
	{
		appointments.GET("", h.Appointment.List)
		appointments.POST("", h.Appointment.Create)
		appointments.GET("/:id", h.Appointment.Get)
		appointments.PATCH("/:id", h.Appointment.Update)
		appointments.DELETE("/:id", h.Appointment.Delete)
	}

	memberships := rg.Group("/membership-tiers")
	{
		memberships.GET("", h.Membership.ListTiers)
		memberships.POST("", middleware.RequireRole("admin"), h.Membership.CreateTier)
		memberships.GET("/:id", h.Membership.GetTier)
	}

	products := rg.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", middleware.RequireRole("admin"), h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.POST("/:id/adjust-stock", h.Product.AdjustStock)
	}

	rg.GET("/dashboard/summary", h.Dashboard.Summary)
}
