package pregnancy

import (
	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/gofiber/fiber/v2"
)

type PregnancyPlugin struct {
	handler *TrackerHandler
}

func New(env *apps.Env) *PregnancyPlugin {
	svc := NewTrackerService(env.Store, env.Metrics, env.Clock())
	return &PregnancyPlugin{handler: NewTrackerHandler(svc)}
}

func (p *PregnancyPlugin) ID() string { return "pregnancy" }

func (p *PregnancyPlugin) Models() []interface{} { return nil }

func (p *PregnancyPlugin) RegisterRoutes(router fiber.Router) {
	router.Get("/pregnancy", p.handler.Get)
	router.Put("/pregnancy/due-date", p.handler.SetDueDate)
	router.Put("/pregnancy/week", p.handler.SetWeek)
	router.Post("/pregnancy/week/next", p.handler.NextWeek)
	router.Post("/pregnancy/week/prev", p.handler.PrevWeek)
	router.Put("/pregnancy/notes", p.handler.SetNotes)
}

func (p *PregnancyPlugin) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/pregnancy/weeks/:week", p.handler.Week)
}
