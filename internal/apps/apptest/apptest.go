// Package apptest wires features into a throwaway Fiber app for tests.
package apptest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dadprep/dadprep-backend/internal/apps"
	"github.com/dadprep/dadprep-backend/internal/config"
	"github.com/dadprep/dadprep-backend/internal/database"
	"github.com/dadprep/dadprep-backend/internal/metrics"
	"github.com/dadprep/dadprep-backend/internal/services"
	"github.com/dadprep/dadprep-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// UserHeader names the header carrying the fake session's email.
const UserHeader = "X-Test-User"

// Now is the fixed clock every test env uses.
var Now = time.Date(2026, time.March, 1, 9, 30, 0, 0, time.UTC)

// NewEnv returns an env backed by an in-memory store and sqlite database.
func NewEnv(t *testing.T) *apps.Env {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.MigrateShared(db))
	t.Cleanup(func() { _ = database.Close(db) })

	return &apps.Env{
		DB:    db,
		Store: storage.NewMemoryStore(),
		Config: &config.Config{
			JWTSecret:     "test-secret",
			NamesSource:   config.NamesBuiltin,
			PublicBaseURL: "https://dadprep.test",
			FrameImageURL: "https://img.test/card.png",
			FrameSiteURL:  "https://site.test",
		},
		Metrics: metrics.New(),
		Filter:  services.NewContentFilter(),
		Now:     func() time.Time { return Now },
	}
}

// NewApp mounts plugins the way the server does, replacing JWT verification
// with a header naming the caller.
func NewApp(t *testing.T, env *apps.Env, plugins ...apps.Plugin) *fiber.App {
	t.Helper()
	for _, p := range plugins {
		require.NoError(t, database.MigrateModels(env.DB, p.Models()))
		if s, ok := p.(apps.Seeder); ok {
			require.NoError(t, s.Seed(context.Background()))
		}
	}

	app := fiber.New()
	api := app.Group("/api")
	for _, p := range plugins {
		if pp, ok := p.(apps.PublicPlugin); ok {
			pp.RegisterPublicRoutes(api)
		}
	}
	protected := api.Group("/p", fakeAuth)
	for _, p := range plugins {
		p.RegisterRoutes(protected)
	}
	return app
}

// UserID is the stable id the fake session assigns to email.
func UserID(email string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(email))
}

func fakeAuth(c *fiber.Ctx) error {
	email := c.Get(UserHeader)
	if email == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	c.Locals("user", jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   UserID(email).String(),
		"email": email,
		"name":  "Test Dad",
	}))
	return c.Next()
}

// Do sends a JSON request as user (empty for anonymous) and returns the
// status and raw body.
func Do(t *testing.T, app *fiber.App, method, path, user string, body interface{}) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set(UserHeader, user)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// DoJSON is Do followed by decoding the body into out.
func DoJSON(t *testing.T, app *fiber.App, method, path, user string, body, out interface{}) int {
	t.Helper()
	status, raw := Do(t, app, method, path, user, body)
	if out != nil && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
	return status
}
