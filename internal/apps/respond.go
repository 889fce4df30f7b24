package apps

import (
	"log/slog"

	"github.com/dadprep/dadprep-backend/internal/apperr"
	"github.com/dadprep/dadprep-backend/internal/dto"
	"github.com/dadprep/dadprep-backend/internal/session"
	"github.com/gofiber/fiber/v2"
)

// Fail answers with the status matching err. Server side failures are
// handed to the app error handler so they get logged and reported.
func Fail(c *fiber.Ctx, err error) error {
	status := apperr.Status(err)
	switch {
	case status == fiber.StatusServiceUnavailable:
		slog.Error("request failed",
			"action", c.Method()+" "+c.Route().Path,
			"request_id", session.RequestID(c),
			"error", err)
		return c.Status(status).JSON(dto.ErrorResponse{
			Error: true, Message: "Could not reach storage, your changes were not saved",
		})
	case status >= 500:
		return err
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}

func Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

// Done answers a successful mutation.
func Done(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(dto.ActionResponse{Message: message, Data: data})
}
