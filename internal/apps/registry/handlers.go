package registry

import (
	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type RegistryHandler struct {
	service *RegistryService
}

func NewRegistryHandler(service *RegistryService) *RegistryHandler {
	return &RegistryHandler{service: service}
}

// ListItems returns both partitions, or one status when ?status= is given.
func (h *RegistryHandler) ListItems(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	if status := c.Query("status"); status != "" {
		items, err := h.service.ItemsByStatus(c.UserContext(), user.Email, status)
		if err != nil {
			return apps.Fail(c, err)
		}
		if items == nil {
			items = []Item{}
		}
		return c.JSON(fiber.Map{"items": items})
	}

	items := h.service.Items(c.UserContext(), user.Email)
	return c.JSON(PartitionItems(items))
}

func (h *RegistryHandler) AddItem(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	item, err := h.service.AddItem(c.UserContext(), user.Email, req)
	if err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusCreated, item.Name+" has been added to your registry.", item)
}

func (h *RegistryHandler) MarkReceived(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	item, err := h.service.MarkReceived(c.UserContext(), user.Email, c.Params("id"))
	if err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusOK, item.Name+" marked as received.", item)
}

func (h *RegistryHandler) DeleteItem(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	if err := h.service.DeleteItem(c.UserContext(), user.Email, c.Params("id")); err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusOK, "Item removed from your registry.", nil)
}

func (h *RegistryHandler) GetPaymentLinks(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}
	return c.JSON(h.service.PaymentLinks(c.UserContext(), user.Email))
}

func (h *RegistryHandler) SavePaymentLinks(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req PaymentLinks
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	links, err := h.service.SavePaymentLinks(c.UserContext(), user.Email, req)
	if err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusOK, "Payment links saved", links)
}

func (h *RegistryHandler) ListLinked(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}
	linked := h.service.LinkedRegistries(c.UserContext(), user.Email)
	if linked == nil {
		linked = []LinkedRegistry{}
	}
	return c.JSON(fiber.Map{"registries": linked})
}

func (h *RegistryHandler) AddLinked(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req AddLinkedRegistryRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	reg, err := h.service.AddLinkedRegistry(c.UserContext(), user.Email, req)
	if err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusCreated, "Your registry has been successfully added.", reg)
}

func (h *RegistryHandler) RemoveLinked(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	if err := h.service.RemoveLinkedRegistry(c.UserContext(), user.Email, c.Params("id")); err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusOK, "Your registry has been removed.", nil)
}

func (h *RegistryHandler) Essentials(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"essentials": Essentials()})
}
