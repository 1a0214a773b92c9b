package schemas

import (
	"time"

	"blogapi/internal/models"
)

// CreatePostRequest is the payload for POST /posts.
type CreatePostRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Content     string `json:"content" validate:"required,min=1"`
	IsPublished *bool  `json:"is_published"`
}

// UpdatePostRequest is the payload for PUT /posts/{id}. Nil fields are left
// unchanged.
type UpdatePostRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content     *string `json:"content" validate:"omitempty,min=1"`
	IsPublished *bool   `json:"is_published"`
}

// PostResponse is the outward representation of a post.
type PostResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	UserID      uint      `json:"user_id"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToPostResponse maps a post entity to its outward representation.
func ToPostResponse(p *models.Post) PostResponse {
	return PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Content:     p.Content,
		UserID:      p.UserID,
		IsPublished: p.IsPublished,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPostResponses maps a slice of post entities, always returning a non-nil
// slice.
func ToPostResponses(posts []models.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, ToPostResponse(&posts[i]))
	}
	return responses
}
