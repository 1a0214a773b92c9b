package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/schemas"
	"blogapi/internal/services"
)

// AuthRequired is a Fiber middleware that gates requests on a valid bearer
// token. On success the token subject (the user ID) is stored in
// c.Locals("user_id") for downstream handlers.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(
				schemas.ErrorResponse("Authorization header is required"))
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(
				schemas.ErrorResponse("Authorization header format must be 'Bearer <token>'"))
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(
				schemas.ErrorResponse("Invalid or expired token"))
		}

		c.Locals("user_id", claims.Subject)

		return c.Next()
	}
}
