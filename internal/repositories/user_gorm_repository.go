package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogapi/internal/models"
	"blogapi/internal/schemas"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user. A violation of the unique email index is
// reported as ErrDuplicateEmail.
func (r *GORMUserRepository) Create(user *models.User) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID, returning ErrNotFound when absent.
func (r *GORMUserRepository) GetByID(id uint) (*models.User, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, returning ErrNotFound when absent.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetAll retrieves one page of users ordered by creation time, newest first.
func (r *GORMUserRepository) GetAll(page, limit int) ([]models.User, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var users []models.User
	offset := (page - 1) * limit
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// Update overwrites only the fields present in req and returns the updated
// user. Returns ErrNotFound when the id does not exist.
func (r *GORMUserRepository) Update(id uint, req *schemas.UpdateUserRequest) (*models.User, error) {
	user, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Username != nil {
		updates["username"] = *req.Username
	}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return user, nil
	}

	db, cancel := withTimeout(r.db)
	defer cancel()

	if err := db.Model(user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}
	return user, nil
}

// Delete removes a user by ID. The boolean reports whether a row existed;
// a missing row is not an error.
func (r *GORMUserRepository) Delete(id uint) (bool, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	res := db.Delete(&models.User{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete user %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Count returns the total number of users.
func (r *GORMUserRepository) Count() (int64, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
