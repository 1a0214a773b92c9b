package handlers

import (
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/schemas"
)

// HandleHealthCheck handles GET /health.
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.JSON(schemas.SuccessResponse("OK", "Service is healthy"))
}
