package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/repositories"
	"blogapi/internal/schemas"
	"blogapi/internal/services"
)

// UserHandler handles HTTP requests for users.
type UserHandler struct {
	service  *services.UserService
	validate *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleCreateUser handles POST /users.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req schemas.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid input data"))
	}

	user, err := h.service.CreateUser(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(
				schemas.ErrorResponse("User with this email already exists"))
		}
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not create user"))
	}

	return c.Status(fiber.StatusCreated).JSON(
		schemas.SuccessResponse(schemas.ToUserResponse(user), "User created successfully"))
}

// HandleGetUsers handles GET /users with pagination.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	params := schemas.PaginationParams{
		Page:  c.QueryInt("page"),
		Limit: c.QueryInt("limit"),
	}

	paginated, err := h.service.ListUsers(params)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not retrieve users"))
	}

	return c.JSON(schemas.SuccessResponse(paginated, "Users retrieved successfully"))
}

// HandleGetUserByID handles GET /users/:id.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid user ID"))
	}

	user, err := h.service.GetUser(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(schemas.ErrorResponse("User not found"))
		}
		log.Printf("Error getting user %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not retrieve user"))
	}

	return c.JSON(schemas.SuccessResponse(schemas.ToUserResponse(user), "User found successfully"))
}

// HandleUpdateUser handles PUT /users/:id with partial update semantics.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid user ID"))
	}

	var req schemas.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid input data"))
	}

	user, err := h.service.UpdateUser(uint(id), &req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(schemas.ErrorResponse("User not found"))
		}
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(
				schemas.ErrorResponse("User with this email already exists"))
		}
		log.Printf("Error updating user %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not update user"))
	}

	return c.JSON(schemas.SuccessResponse(schemas.ToUserResponse(user), "User updated successfully"))
}

// HandleDeleteUser handles DELETE /users/:id. Owned posts are removed by
// the store's cascade.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid user ID"))
	}

	deleted, err := h.service.DeleteUser(uint(id))
	if err != nil {
		log.Printf("Error deleting user %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not delete user"))
	}
	if !deleted {
		return c.JSON(schemas.ErrorResponse("User not found"))
	}

	return c.JSON(schemas.SuccessResponse("User deleted", "User deleted successfully"))
}
