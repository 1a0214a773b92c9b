package schemas

import (
	"time"

	"blogapi/internal/models"
)

// CreateUserRequest is the payload for POST /users.
type CreateUserRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=100"`
}

// UpdateUserRequest is the payload for PUT /users/{id}. Pointer fields
// distinguish "not sent" (nil) from "sent"; nil fields are left unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Username *string `json:"username" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name" validate:"omitempty,min=1,max=100"`
	IsActive *bool   `json:"is_active"`
}

// UserResponse is the outward representation of a user. It never carries
// the password digest.
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse maps a user entity to its outward representation.
func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserResponses maps a slice of user entities, always returning a non-nil
// slice so list payloads serialize as [] rather than null.
func ToUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}
