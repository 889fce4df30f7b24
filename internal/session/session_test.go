package session

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	id := uuid.New()
	tests := []struct {
		name    string
		locals  interface{}
		wantErr bool
	}{
		{name: "no token", locals: nil, wantErr: true},
		{name: "missing email", locals: jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": id.String()}), wantErr: true},
		{name: "bad sub", locals: jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "nope", "email": "a@b.c"}), wantErr: true},
		{name: "valid", locals: jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": id.String(), "email": "dad@example.com", "name": "Dad"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			var got User
			var gotErr error
			app.Get("/", func(c *fiber.Ctx) error {
				if tt.locals != nil {
					c.Locals("user", tt.locals)
				}
				got, gotErr = Current(c)
				return nil
			})

			_, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			if tt.wantErr {
				assert.Error(t, gotErr)
				return
			}
			require.NoError(t, gotErr)
			assert.Equal(t, User{ID: id, Email: "dad@example.com", Name: "Dad"}, got)
		})
	}
}
