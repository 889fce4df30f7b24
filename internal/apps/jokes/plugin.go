package jokes

import (
	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/gofiber/fiber/v2"
)

type JokesPlugin struct {
	handler *JokeHandler
}

func New(env *apps.Env) *JokesPlugin {
	return &JokesPlugin{handler: NewJokeHandler(NewJokeService(env.Store, env.Metrics))}
}

func (p *JokesPlugin) ID() string { return "jokes" }

func (p *JokesPlugin) Models() []interface{} { return nil }

func (p *JokesPlugin) RegisterRoutes(router fiber.Router) {
	router.Get("/jokes/liked", p.handler.Liked)
	router.Post("/jokes/:index/like", p.handler.ToggleLike)
}

func (p *JokesPlugin) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/jokes", p.handler.List)
	router.Get("/jokes/random", p.handler.Random)
	router.Get("/jokes/:index", p.handler.Get)
}
