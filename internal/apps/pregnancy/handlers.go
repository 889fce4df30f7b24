package pregnancy

import (
	"fmt"
	"strconv"

	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

type TrackerHandler struct {
	service *TrackerService
}

func NewTrackerHandler(service *TrackerService) *TrackerHandler {
	return &TrackerHandler{service: service}
}

func (h *TrackerHandler) Get(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}
	st := h.service.Get(c.UserContext(), user.Email)
	return c.JSON(h.service.Overview(st))
}

func (h *TrackerHandler) SetDueDate(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req SetDueDateRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	var due *Date
	if req.DueDate != nil && *req.DueDate != "" {
		d, err := ParseDate(*req.DueDate)
		if err != nil {
			return apps.BadRequest(c, err.Error())
		}
		due = &d
	}

	st, err := h.service.SetDueDate(c.UserContext(), user.Email, due)
	if err != nil {
		return apps.Fail(c, err)
	}

	msg := "Due date cleared"
	if due != nil {
		msg = fmt.Sprintf("Your due date has been set to %s.", due.Long())
	}
	return apps.Done(c, fiber.StatusOK, msg, h.service.Overview(st))
}

func (h *TrackerHandler) NextWeek(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}
	st, err := h.service.NextWeek(c.UserContext(), user.Email)
	if err != nil {
		return apps.Fail(c, err)
	}
	return c.JSON(h.service.Overview(st))
}

func (h *TrackerHandler) PrevWeek(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}
	st, err := h.service.PrevWeek(c.UserContext(), user.Email)
	if err != nil {
		return apps.Fail(c, err)
	}
	return c.JSON(h.service.Overview(st))
}

func (h *TrackerHandler) SetWeek(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req SetWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	st, err := h.service.SetWeek(c.UserContext(), user.Email, req.Week)
	if err != nil {
		return apps.Fail(c, err)
	}
	return c.JSON(h.service.Overview(st))
}

func (h *TrackerHandler) SetNotes(c *fiber.Ctx) error {
	user, err := session.Current(c)
	if err != nil {
		return apps.Unauthorized(c)
	}

	var req SetNotesRequest
	if err := c.BodyParser(&req); err != nil {
		return apps.BadRequest(c, "Invalid request body")
	}

	st, err := h.service.SetNotes(c.UserContext(), user.Email, req.Notes)
	if err != nil {
		return apps.Fail(c, err)
	}
	return apps.Done(c, fiber.StatusOK, "Your pregnancy notes have been saved.", h.service.Overview(st))
}

// Week serves the public view of any week.
func (h *TrackerHandler) Week(c *fiber.Ctx) error {
	week, err := strconv.Atoi(c.Params("week"))
	if err != nil || week < FirstWeek || week > LastWeek {
		return apps.Fail(c, ErrInvalidWeek)
	}
	return c.JSON(ViewFor(week))
}
