package registry

import (
	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/gofiber/fiber/v2"
)

type RegistryPlugin struct {
	service *RegistryService
	handler *RegistryHandler
}

func New(env *apps.Env) *RegistryPlugin {
	svc := NewRegistryService(env.Store, env.Metrics, env.Clock())
	return &RegistryPlugin{service: svc, handler: NewRegistryHandler(svc)}
}

// Service exposes the registry to features that read it, such as public
// profiles.
func (p *RegistryPlugin) Service() *RegistryService { return p.service }

func (p *RegistryPlugin) ID() string { return "registry" }

func (p *RegistryPlugin) Models() []interface{} { return nil }

func (p *RegistryPlugin) RegisterRoutes(router fiber.Router) {
	router.Get("/registry/items", p.handler.ListItems)
	router.Post("/registry/items", p.handler.AddItem)
	router.Post("/registry/items/:id/received", p.handler.MarkReceived)
	router.Delete("/registry/items/:id", p.handler.DeleteItem)

	router.Get("/registry/payment-links", p.handler.GetPaymentLinks)
	router.Put("/registry/payment-links", p.handler.SavePaymentLinks)

	router.Get("/registry/links", p.handler.ListLinked)
	router.Post("/registry/links", p.handler.AddLinked)
	router.Delete("/registry/links/:id", p.handler.RemoveLinked)
}

func (p *RegistryPlugin) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/registry/essentials", p.handler.Essentials)
}
