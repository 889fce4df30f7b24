package profile

import (
	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/apps/registry"
	"github.com/gofiber/fiber/v2"
)

type ProfilePlugin struct {
	handler *ProfileHandler
}

// New needs the registry service to render shared registries.
func New(env *apps.Env, reg *registry.RegistryService) *ProfilePlugin {
	svc := NewProfileService(env.DB, reg, env.Filter, env.Config.PublicBaseURL)
	return &ProfilePlugin{handler: NewProfileHandler(svc)}
}

func (p *ProfilePlugin) ID() string { return "profile" }

// Models is empty: users are migrated with the shared models.
func (p *ProfilePlugin) Models() []interface{} { return nil }

func (p *ProfilePlugin) RegisterRoutes(router fiber.Router) {
	router.Get("/profile", p.handler.Get)
	router.Put("/profile", p.handler.UpdateName)
	router.Put("/profile/privacy", p.handler.UpdatePrivacy)
	router.Get("/profile/preview", p.handler.Preview)
}

func (p *ProfilePlugin) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/profiles/:slug", p.handler.Public)
}
