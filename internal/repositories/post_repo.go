package repositories

import (
	"blogapi/internal/models"
	"blogapi/internal/schemas"
)

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	GetAll(page, limit int) ([]models.Post, error)
	Update(id uint, req *schemas.UpdatePostRequest) (*models.Post, error)
	Delete(id uint) (bool, error)
	Count() (int64, error)
}
