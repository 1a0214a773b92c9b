package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/middleware"
	"blogapi/internal/repositories"
	"blogapi/internal/schemas"
	"blogapi/internal/services"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/me", middleware.AuthRequired(h.authService), h.HandleMe)
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin checks credentials and issues a signed token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid input data"))
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(
				schemas.ErrorResponse("Invalid credentials"))
		}
		log.Printf("Error during login for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not log in"))
	}

	return c.JSON(schemas.SuccessResponse(fiber.Map{"token": token}, "Login successful"))
}

// HandleMe returns the authenticated user. Requires the auth middleware.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	sub, ok := c.Locals("user_id").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(
			schemas.ErrorResponse("Authorization required"))
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(
			schemas.ErrorResponse("Invalid token subject"))
	}

	user, err := h.userService.GetUser(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(schemas.ErrorResponse("User not found"))
		}
		log.Printf("Error getting current user %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not retrieve user"))
	}

	return c.JSON(schemas.SuccessResponse(schemas.ToUserResponse(user), "User found successfully"))
}
