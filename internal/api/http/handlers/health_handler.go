package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/repairconnect/api/internal/persistence"
	apperrors "github.com/repairconnect/api/pkg/util"
)

// HealthHandler responds to the public root and database check routes.
type HealthHandler struct {
	postgres *persistence.Postgres
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(postgres *persistence.Postgres) *HealthHandler {
	return &HealthHandler{postgres: postgres}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.SendString("Backend is working!")
}

// DBCheck handles GET /db-check by reading the database clock.
func (h *HealthHandler) DBCheck(c *fiber.Ctx) error {
	now, err := h.postgres.Now(c.Context())
	if err != nil {
		return apperrors.NewInternal("database not reachable", err)
	}
	return c.JSON(fiber.Map{"db_time": now})
}
