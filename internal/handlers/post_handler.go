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

// defaultPostOwnerID is the owner recorded for posts created through the
// public endpoint.
const defaultPostOwnerID uint = 1

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service  *services.PostService
	validate *validator.Validate
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *services.PostService) *PostHandler {
	return &PostHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the post routes with the Fiber app.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postRoutes := router.Group("/posts")
	postRoutes.Post("/", h.HandleCreatePost)
	postRoutes.Get("/", h.HandleGetPosts)
	postRoutes.Get("/:id", h.HandleGetPostByID)
	postRoutes.Put("/:id", h.HandleUpdatePost)
	postRoutes.Delete("/:id", h.HandleDeletePost)
}

// HandleCreatePost handles POST /posts. Posts are created for the default
// owner; the route carries no authenticated identity.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var req schemas.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid input data"))
	}

	post, err := h.service.CreatePost(defaultPostOwnerID, &req)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not create post"))
	}

	return c.Status(fiber.StatusCreated).JSON(
		schemas.SuccessResponse(schemas.ToPostResponse(post), "Post created successfully"))
}

// HandleGetPosts handles GET /posts with pagination.
func (h *PostHandler) HandleGetPosts(c *fiber.Ctx) error {
	params := schemas.PaginationParams{
		Page:  c.QueryInt("page"),
		Limit: c.QueryInt("limit"),
	}

	paginated, err := h.service.ListPosts(params)
	if err != nil {
		log.Printf("Error listing posts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not retrieve posts"))
	}

	return c.JSON(schemas.SuccessResponse(paginated, "Posts retrieved successfully"))
}

// HandleGetPostByID handles GET /posts/:id.
func (h *PostHandler) HandleGetPostByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid post ID"))
	}

	post, err := h.service.GetPost(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(schemas.ErrorResponse("Post not found"))
		}
		log.Printf("Error getting post %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not retrieve post"))
	}

	return c.JSON(schemas.SuccessResponse(schemas.ToPostResponse(post), "Post found successfully"))
}

// HandleUpdatePost handles PUT /posts/:id with partial update semantics.
func (h *PostHandler) HandleUpdatePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid post ID"))
	}

	var req schemas.UpdatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid request body"))
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid input data"))
	}

	post, err := h.service.UpdatePost(uint(id), &req)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.JSON(schemas.ErrorResponse("Post not found"))
		}
		log.Printf("Error updating post %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not update post"))
	}

	return c.JSON(schemas.SuccessResponse(schemas.ToPostResponse(post), "Post updated successfully"))
}

// HandleDeletePost handles DELETE /posts/:id.
func (h *PostHandler) HandleDeletePost(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(
			schemas.ErrorResponse("Invalid post ID"))
	}

	deleted, err := h.service.DeletePost(uint(id))
	if err != nil {
		log.Printf("Error deleting post %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(
			schemas.ErrorResponse("Could not delete post"))
	}
	if !deleted {
		return c.JSON(schemas.ErrorResponse("Post not found"))
	}

	return c.JSON(schemas.SuccessResponse("Post deleted", "Post deleted successfully"))
}
