package session

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrNoSession = errors.New("no authenticated session")

// User is the caller identified by the access token.
type User struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// Current extracts the caller from the JWT claims placed in locals by the
// auth middleware.
func Current(c *fiber.Ctx) (User, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return User{}, ErrNoSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return User{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return User{}, errors.New("missing sub claim")
	}
	id, err := uuid.Parse(sub)
	if err != nil {
		return User{}, err
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return User{}, errors.New("missing email claim")
	}
	name, _ := claims["name"].(string)

	return User{ID: id, Email: email, Name: name}, nil
}

// GetUserID extracts the user UUID from JWT claims in context.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	u, err := Current(c)
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

// RequestID returns the id assigned by the requestid middleware.
func RequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
