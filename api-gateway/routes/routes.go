package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/traceright/dataset-service/api-gateway/config"
	"github.com/traceright/dataset-service/api-gateway/middleware"
	"github.com/traceright/dataset-service/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
	RequireAuth bool
	Throttled   bool // stricter rate limit for bulk endpoints
}

// Routes holds all route definitions. The admin check itself lives in the
// backend; the gateway only establishes identity.
var Routes = []RouteDefinition{
	{
		Prefix:      "/auth",
		ServiceName: "dataset",
		Description: "Authentication endpoints (login, register)",
	},
	{
		Prefix:      "/users",
		ServiceName: "dataset",
		Description: "User profile endpoints",
		RequireAuth: true,
	},
	{
		Prefix:      "/admin/dataset",
		ServiceName: "dataset",
		Description: "Bulk dataset seeding and clearing",
		RequireAuth: true,
		Throttled:   true,
	},
	{
		Prefix:      "/admin",
		ServiceName: "dataset",
		Description: "Role and privilege management",
		RequireAuth: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, redisClient *redis.Client) {
	reverseProxy := proxy.NewReverseProxy(cfg)

	// Gateway liveness, no downstream checks
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	// Readiness checks the dataset service's own health endpoint
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		svc := cfg.Services["dataset"]
		status := fiber.StatusOK
		for _, instance := range svc.Instances {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, instance+svc.HealthCheck, nil)
			if err != nil {
				status = fiber.StatusServiceUnavailable
				break
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil || resp.StatusCode != http.StatusOK {
				status = fiber.StatusServiceUnavailable
				if resp != nil {
					resp.Body.Close()
				}
				break
			}
			resp.Body.Close()
		}

		return c.Status(status).JSON(fiber.Map{
			"status":    statusText(status),
			"instances": svc.Instances,
		})
	})

	// Route overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy, redisClient)
	}
}

func statusText(status int) string {
	if status == fiber.StatusOK {
		return "ready"
	}
	return "unhealthy"
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy, redisClient *redis.Client) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler
	if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}
	if route.Throttled && redisClient != nil {
		middlewares = append(middlewares, middleware.SeedRateLimiter(redisClient))
	}

	group := app.Group(route.Prefix, middlewares...)
	group.All("/*", handler)

	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
