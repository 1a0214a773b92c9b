package repositories

import (
	"blogapi/internal/models"
	"blogapi/internal/schemas"
)

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll(page, limit int) ([]models.User, error)
	Update(id uint, req *schemas.UpdateUserRequest) (*models.User, error)
	Delete(id uint) (bool, error)
	Count() (int64, error)
}
