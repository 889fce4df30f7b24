package meals

import (
	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/gofiber/fiber/v2"
)

type MealsPlugin struct {
	handler *MealHandler
}

func New(env *apps.Env) *MealsPlugin {
	return &MealsPlugin{handler: NewMealHandler(NewMealService(env.Store, env.Metrics))}
}

func (p *MealsPlugin) ID() string { return "meals" }

func (p *MealsPlugin) Models() []interface{} { return nil }

func (p *MealsPlugin) RegisterRoutes(router fiber.Router) {
	router.Get("/meals", p.handler.List)
	router.Post("/meals", p.handler.Add)
	router.Delete("/meals/:id", p.handler.Remove)
	router.Get("/meals/saved", p.handler.ListSaved)
	router.Post("/meals/:id/save", p.handler.ToggleSaved)
}

func (p *MealsPlugin) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/meals/catalog", p.handler.Catalog)
}
