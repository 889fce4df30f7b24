package routes

import (
	"time"

	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/apps/frame"
	"github.com/dadprep/dadprep-backend/internal/apps/jokes"
	"github.com/dadprep/dadprep-backend/internal/apps/meals"
	"github.com/dadprep/dadprep-backend/internal/apps/names"
	"github.com/dadprep/dadprep-backend/internal/apps/pregnancy"
	"github.com/dadprep/dadprep-backend/internal/apps/profile"
	"github.com/dadprep/dadprep-backend/internal/apps/registry"
	"github.com/dadprep/dadprep-backend/internal/config"
	"github.com/dadprep/dadprep-backend/internal/dto"
	"github.com/dadprep/dadprep-backend/internal/handlers"
	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const (
	apiRequestsPerMinute  = 120
	authRequestsPerMinute = 10
)

// SelfServedCORS lists routes that set their own CORS headers and must
// bypass the global CORS middleware.
var SelfServedCORS = []string{"/api" + frame.Path}

// Plugins builds every feature in mount order.
func Plugins(env *apps.Env) []apps.Plugin {
	reg := registry.New(env)
	return []apps.Plugin{
		pregnancy.New(env),
		reg,
		names.New(env),
		meals.New(env),
		jokes.New(env),
		profile.New(env, reg.Service()),
		frame.New(env),
	}
}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	m *metrics.Metrics,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	plugins []apps.Plugin,
) {
	app.Get("/metrics", m.Handler())

	api := app.Group("/api")

	// General API rate limiter
	api.Use(limiter.New(limiter.Config{
		Max:               apiRequestsPerMinute,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth, with a stricter per-IP limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               authRequestsPerMinute,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	auth.Delete("/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	for _, p := range plugins {
		if pp, ok := p.(apps.PublicPlugin); ok {
			pp.RegisterPublicRoutes(api)
		}
	}

	// Per-user feature routes. JWT applies to this group only so public
	// routes above stay open.
	protected := api.Group("/p", middleware.JWTProtected(cfg))
	for _, p := range plugins {
		p.RegisterRoutes(protected)
	}

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Not found",
		})
	})
}
