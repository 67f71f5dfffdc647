package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/vastrika/storefront/api-gateway/config"
	"github.com/vastrika/storefront/api-gateway/health"
	"github.com/vastrika/storefront/api-gateway/middleware"
	"github.com/vastrika/storefront/api-gateway/proxy"
	"github.com/vastrika/storefront/pkg/logger"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix       string
	ServiceName  string
	Description  string
	RequireAuth  bool // Requires authentication
	RequireAdmin bool // Requires admin role
}

// Routes holds all route definitions. Order matters: more specific
// prefixes must come before the broader ones they shadow, e.g.
// /api/custom/options (public) before /api/custom (auth).
var Routes = []RouteDefinition{
	// Public routes (no auth required)
	{
		Prefix:       "/api/auth",
		ServiceName:  "users",
		Description:  "Authentication endpoints (login, register)",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/sarees",
		ServiceName:  "catalog",
		Description:  "Saree catalog browsing (admin writes enforced downstream)",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/regions",
		ServiceName:  "catalog",
		Description:  "Weaving region directory",
		RequireAuth:  false,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/custom/options",
		ServiceName:  "custom",
		Description:  "Custom saree design option catalogs",
		RequireAuth:  false,
		RequireAdmin: false,
	},

	// Authenticated routes
	{
		Prefix:       "/api/custom",
		ServiceName:  "custom",
		Description:  "Custom saree requests (mixed: quoting needs admin)",
		RequireAuth:  true,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/orders",
		ServiceName:  "orders",
		Description:  "Order placement and tracking (mixed: some need admin)",
		RequireAuth:  true,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/bargains",
		ServiceName:  "bargains",
		Description:  "Bargain offers (mixed: responding needs admin)",
		RequireAuth:  true,
		RequireAdmin: false,
	},
	{
		Prefix:       "/api/users",
		ServiceName:  "users",
		Description:  "Own profile management",
		RequireAuth:  true,
		RequireAdmin: false,
	},

	// Admin routes
	{
		Prefix:       "/api/admin",
		ServiceName:  "users",
		Description:  "User administration",
		RequireAuth:  true,
		RequireAdmin: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cbManager *middleware.CircuitBreakerManager, redisClient *redis.Client) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)
		return c.JSON(healthStatus)
	})

	// Circuit breaker stats
	app.Get("/health/circuits", func(c *fiber.Ctx) error {
		return c.JSON(cbManager.GetAllStats())
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Vastrika Storefront Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy, redisClient)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy, redisClient *redis.Client) {
	handler := func(c *fiber.Ctx) error {
		err := proxyHandler.ProxyRequest(c, route.ServiceName)

		// Catalog writes flush cached catalog responses so admins see
		// their changes immediately.
		if err == nil && redisClient != nil && route.ServiceName == "catalog" &&
			c.Method() != fiber.MethodGet && c.Method() != fiber.MethodHead &&
			c.Response().StatusCode() < 400 {
			if invErr := middleware.InvalidateCache(redisClient, "cache:*"); invErr != nil {
				logger.Logger.Warn().
					Err(invErr).
					Str("path", c.Path()).
					Msg("Failed to invalidate cache after catalog write")
			}
		}

		return err
	}

	var middlewares []fiber.Handler

	if route.RequireAdmin {
		// Admin routes need both auth and admin check
		middlewares = append(middlewares, middleware.AuthMiddleware(), middleware.AdminMiddleware())
	} else if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}
	// Public routes have no middleware

	group := app.Group(route.Prefix, middlewares...)
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
