package handlers

import (
	"lifetube/pkg/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler liveness endpoint
type HealthHandler struct {
	AllowedOrigins []string
}

// Health report service status and the active CORS allow-list
// @Summary Health check
// @Tags Health
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":         "OK",
		"message":        "LifeTube API is running",
		"environment":    config.Env(),
		"allowedOrigins": h.AllowedOrigins,
	})
}
