package frame

import (
	"fmt"
	"log/slog"

	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

// Path is mounted on the public /api group.
const Path = "/frame"

type FramePlugin struct {
	cards Cards
}

func New(env *apps.Env) *FramePlugin {
	return &FramePlugin{cards: Cards{Image: env.Config.FrameImageURL, Site: env.Config.FrameSiteURL}}
}

func (p *FramePlugin) ID() string { return "frame" }

func (p *FramePlugin) Models() []interface{} { return nil }

func (p *FramePlugin) RegisterRoutes(fiber.Router) {}

func (p *FramePlugin) RegisterPublicRoutes(router fiber.Router) {
	router.All(Path, p.Handle)
}

// Handle answers every method on the frame endpoint.
func (p *FramePlugin) Handle(c *fiber.Ctx) (err error) {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")

	switch c.Method() {
	case fiber.MethodOptions:
		c.Status(fiber.StatusOK)
		return nil
	case fiber.MethodGet, fiber.MethodPost:
	default:
		slog.Info("frame method not allowed", "method", c.Method(), "request_id", session.RequestID(c))
		return c.JSON(p.cards.NotAllowed())
	}

	defer func() {
		if r := recover(); r != nil {
			slog.Error("frame handler panicked", "error", fmt.Sprint(r), "request_id", session.RequestID(c))
			err = c.Status(fiber.StatusOK).JSON(p.cards.Recovered())
		}
	}()

	index := 0
	if c.Method() == fiber.MethodPost {
		index, err = ButtonIndex(c.Body(), c.Query("buttonIndex"))
		if err != nil {
			slog.Warn("frame request rejected", "error", err, "request_id", session.RequestID(c))
			return c.JSON(p.cards.Recovered())
		}
	}

	slog.Debug("frame request", "method", c.Method(), "button_index", index)
	return c.JSON(p.cards.ForButton(index))
}
