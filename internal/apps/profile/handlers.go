package profile

import (
	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	service *ProfileService
}

func NewProfileHandler(service *ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	view, err := h.service.Get(c.UserContext(), user.ID)
	if err != nil {
		return apps.Fail(c, err)
	}
	return c.JSON(view)
}

func (h *ProfileHandler) UpdateName(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req UpdateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	view, changed, err := h.service.UpdateName(c.UserContext(), user.ID, req.Name)
	if err != nil {
		return apps.Fail(c, err)
	}
	if !changed {
		return apps.Done(c, fiber.StatusOK, "Your name is unchanged", view)
	}
	return apps.Done(c, fiber.StatusOK, "Your name has been updated", view)
}

func (h *ProfileHandler) UpdatePrivacy(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req UpdatePrivacyRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	view, err := h.service.UpdatePrivacy(c.UserContext(), user.ID, req)
	if err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusOK, "Privacy settings updated", view)
}

func (h *ProfileHandler) Preview(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	view, err := h.service.Preview(c.UserContext(), user.ID)
	if err != nil {
		return apps.Fail(c, err)
	}
	return c.JSON(view)
}

func (h *ProfileHandler) Public(c *fiber.Ctx) error {
	view, err := h.service.Public(c.UserContext(), c.Params("slug"))
	if err != nil {
		return apps.Fail(c, err)
	}
	return c.JSON(view)
}
