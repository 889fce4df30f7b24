package middleware

import (
	"slices"
	"strings"

	"github.com/dadprep/dadprep-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS applies CORS_ORIGINS to every route except selfServed paths, which
// answer preflights and set their own headers.
func CORS(cfg *config.Config, selfServed ...string) fiber.Handler {
	return cors.New(cors.Config{
		Next: func(c *fiber.Ctx) bool {
			path := c.Path()
			if len(path) > 1 {
				path = strings.TrimSuffix(path, "/")
			}
			return slices.Contains(selfServed, path)
		},
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
		AllowCredentials: false,
	})
}

// SecurityHeaders sets the static hardening headers on every response.
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	}
}
