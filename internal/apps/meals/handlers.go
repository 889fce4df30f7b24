package meals

import (
	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type MealHandler struct {
	service *MealService
}

func NewMealHandler(service *MealService) *MealHandler {
	return &MealHandler{service: service}
}

// List answers ?type= and ?q= filters.
func (h *MealHandler) List(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	meals, err := h.service.List(c.UserContext(), user.Email, c.Query("type"), c.Query("q"))
	if err != nil {
		return apps.Fail(c, err)
	}
	return c.JSON(fiber.Map{"meals": meals})
}

func (h *MealHandler) Add(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req AddMealRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	meal, err := h.service.AddMeal(c.UserContext(), user.Email, req)
	if err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusCreated, meal.Name+" has been added to your meals.", meal)
}

func (h *MealHandler) Remove(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	if err := h.service.RemoveMeal(c.UserContext(), user.Email, c.Params("id")); err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusOK, "Meal removed.", nil)
}

func (h *MealHandler) ListSaved(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}
	return c.JSON(fiber.Map{"meals": h.service.Saved(c.UserContext(), user.Email)})
}

func (h *MealHandler) ToggleSaved(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	meal, saved, err := h.service.ToggleSaved(c.UserContext(), user.Email, c.Params("id"))
	if err != nil {
		return apps.Fail(c, err)
	}
	data := fiber.Map{"id": meal.ID, "saved": saved}
	if saved {
		return apps.Done(c, fiber.StatusOK, "The meal has been added to your favorites.", data)
	}
	return apps.Done(c, fiber.StatusOK, "The meal has been removed from your favorites.", data)
}

func (h *MealHandler) Catalog(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"meals": Builtin(), "tips": Tips()})
}
