package handlers

import (
	"time"

	"github.com/dadprep/dadprep-backend/internal/database"
	"github.com/dadprep/dadprep-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db       *gorm.DB
	store    string
	features int
}

// NewHealthHandler reports on db, the configured blob store backend and the
// number of mounted features.
func NewHealthHandler(db *gorm.DB, storeBackend string, features int) *HealthHandler {
	return &HealthHandler{db: db, store: storeBackend, features: features}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Store:     h.store,
		Features:  h.features,
	})
}
