package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/runpro9ja/admin-gateway/internal/api/handler"
	"github.com/runpro9ja/admin-gateway/internal/api/middleware"
	"github.com/runpro9ja/admin-gateway/internal/core/domain"
	"github.com/runpro9ja/admin-gateway/internal/core/ports"
	"github.com/runpro9ja/admin-gateway/internal/core/service"
	"github.com/runpro9ja/admin-gateway/internal/infrastructure/poller"
)

// Dependencies carries everything the route table needs. Services are
// constructed in main so the poller can share the feed service.
type Dependencies struct {
	Sessions  ports.SessionService
	Feeds     *service.FeedService
	Upstream  ports.Upstream
	Poller    *poller.Poller
	Mongo     *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Guards ---
	authGuard := middleware.Auth(deps.JWTSecret, deps.Sessions)
	dashboardGuard := middleware.Policy(deps.Sessions, domain.DashboardPolicy)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Sessions)
	dashboardHandler := handler.NewDashboardHandler(deps.Feeds, deps.Upstream)
	servicesHandler := handler.NewServicesHandler(deps.Feeds)
	deliveryHandler := handler.NewDeliveryHandler(deps.Feeds, deps.Poller)
	providersHandler := handler.NewProvidersHandler(deps.Feeds)
	supportHandler := handler.NewSupportHandler(deps.Feeds, deps.Upstream)
	paymentsHandler := handler.NewPaymentsHandler(deps.Feeds, deps.Upstream)
	accountsHandler := handler.NewAccountsHandler(deps.Upstream)
	notificationsHandler := handler.NewNotificationsHandler(deps.Upstream)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authGuard)
	e.GET("/auth/verify", authHandler.Verify, authGuard)

	// --- Protected dashboard surface ---
	admin := e.Group("/api/admin", authGuard, dashboardGuard)
	admin.GET("/dashboard/overview", dashboardHandler.Overview)
	admin.GET("/analytics/summary", dashboardHandler.AnalyticsSummary)
	admin.GET("/service-requests", servicesHandler.ServiceRequests)
	admin.GET("/delivery-details", servicesHandler.DeliveryDetails)
	admin.GET("/active-deliveries", deliveryHandler.ActiveDeliveries)
	admin.GET("/service-providers", providersHandler.ServiceProviders)
	admin.GET("/potential-providers", providersHandler.PotentialProviders)
	admin.GET("/top-agents", providersHandler.TopAgents)
	admin.GET("/recent-payments", paymentsHandler.Recent)
	admin.GET("/payments-summary", paymentsHandler.Summary)
	admin.GET("/payments-inflow", paymentsHandler.Inflow)
	admin.GET("/payments-outflow", paymentsHandler.Outflow)
	admin.GET("/accounts", accountsHandler.List)
	admin.PUT("/accounts/:id", accountsHandler.Update)
	admin.DELETE("/accounts", accountsHandler.Delete)

	support := e.Group("/api/support", authGuard, dashboardGuard)
	support.GET("/messages", supportHandler.Cases)
	support.GET("/employees", supportHandler.Employees)
	support.GET("/pending-requests", supportHandler.PendingRequests)

	notifications := e.Group("/api/notifications", authGuard, dashboardGuard)
	notifications.GET("", notificationsHandler.List)
	notifications.PATCH("/:id/read", notificationsHandler.MarkRead)
	notifications.PATCH("/read-all", notificationsHandler.MarkAllRead)
	notifications.GET("/unread-count", notificationsHandler.UnreadCount)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
