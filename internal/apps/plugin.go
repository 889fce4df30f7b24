package apps

import (
	"context"
	"time"

	"github.com/dadprep/dadprep-backend/internal/config"
	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/services"
	"github.com/dadprep/dadprep-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Env carries the shared dependencies every feature is built from.
type Env struct {
	DB      *gorm.DB
	Store   storage.Store
	Config  *config.Config
	Metrics *metrics.Metrics
	Filter  *services.ContentFilter
	Now     func() time.Time
}

// Clock returns Now, or time.Now when unset.
func (e *Env) Clock() func() time.Time {
	if e.Now == nil {
		return time.Now
	}
	return e.Now
}

// Plugin defines the interface every feature must implement.
type Plugin interface {
	// ID returns the unique feature identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	Models() []interface{}

	// RegisterRoutes mounts per-user routes on the given Fiber group.
	// The group is already prefixed with /api/p and has JWT middleware applied.
	RegisterRoutes(router fiber.Router)
}

// PublicPlugin extends Plugin with routes that need no session.
type PublicPlugin interface {
	Plugin

	// RegisterPublicRoutes mounts routes on the unauthenticated /api group.
	RegisterPublicRoutes(router fiber.Router)
}

// Seeder is implemented by features that fill their tables once migrations
// have run.
type Seeder interface {
	Seed(ctx context.Context) error
}
