package jokes

import (
	"strconv"

	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type JokeHandler struct {
	service *JokeService
}

func NewJokeHandler(service *JokeService) *JokeHandler {
	return &JokeHandler{service: service}
}

func (h *JokeHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"jokes": h.service.All(), "count": h.service.Len()})
}

func (h *JokeHandler) Get(c *fiber.Ctx) error {
	i, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return apps.BadRequest(c, "Joke index must be a number")
	}
	return c.JSON(h.service.Get(i))
}

// Random answers any joke except ?exclude=.
func (h *JokeHandler) Random(c *fiber.Ctx) error {
	exclude, err := strconv.Atoi(c.Query("exclude", "0"))
	if err != nil {
		return apps.BadRequest(c, "exclude must be a number")
	}
	return c.JSON(h.service.Random(exclude))
}

func (h *JokeHandler) Liked(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}
	return c.JSON(fiber.Map{"jokes": h.service.Liked(c.UserContext(), user.Email)})
}

func (h *JokeHandler) ToggleLike(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	i, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return apps.BadRequest(c, "Joke index must be a number")
	}

	view, err := h.service.ToggleLike(c.UserContext(), user.Email, i)
	if err != nil {
		return apps.Fail(c, err)
	}
	if view.Liked {
		return apps.Done(c, fiber.StatusOK, "Joke liked.", view)
	}
	return apps.Done(c, fiber.StatusOK, "Joke unliked.", view)
}
