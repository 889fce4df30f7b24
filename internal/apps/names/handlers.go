package names

import (
	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type NamesHandler struct {
	service *NamesService
}

func NewNamesHandler(service *NamesService) *NamesHandler {
	return &NamesHandler{service: service}
}

// Explore lists names for ?tab= (default all) matching ?q=.
func (h *NamesHandler) Explore(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	names, err := h.service.Explore(c.UserContext(), user.Email, c.Query("tab"), c.Query("q"))
	if err != nil {
		return apps.Fail(c, err)
	}
	return c.JSON(fiber.Map{"names": names})
}

func (h *NamesHandler) AddPersonal(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req AddNameRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	name, err := h.service.AddPersonal(c.UserContext(), user.Email, req)
	if err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusCreated, name.Name+" has been added to your names.", name)
}

func (h *NamesHandler) RemovePersonal(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	if err := h.service.RemovePersonal(c.UserContext(), user.Email, c.Params("id")); err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusOK, "Name removed from your list.", nil)
}

func (h *NamesHandler) ListFavorites(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	favs := h.service.Favorites(c.UserContext(), user.Email)
	if favs == nil {
		favs = []string{}
	}
	return c.JSON(fiber.Map{"favorites": favs})
}

func (h *NamesHandler) ToggleFavorite(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req ToggleFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	favorite, err := h.service.ToggleFavorite(c.UserContext(), user.Email, req.Name)
	if err != nil {
		return apps.Fail(c, err)
	}
	data := fiber.Map{"name": req.Name, "is_favorite": favorite}
	if favorite {
		return apps.Done(c, fiber.StatusOK, req.Name+" has been added to your favorites.", data)
	}
	return apps.Done(c, fiber.StatusOK, req.Name+" has been removed from your favorites.", data)
}

func (h *NamesHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"names": h.service.Catalog(c.UserContext()),
		"tips":  Tips(),
	})
}

func (h *NamesHandler) ByWallet(c *fiber.Ctx) error {
	names, err := h.service.ByWallet(c.UserContext(), c.Params("address"))
	if err != nil {
		return apps.Fail(c, err)
	}
	if names == nil {
		names = []PersonalBabyName{}
	}
	return c.JSON(fiber.Map{"names": names})
}
