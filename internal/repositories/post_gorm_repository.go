package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"blogapi/internal/models"
	"blogapi/internal/schemas"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// Create inserts a new post.
func (r *GORMPostRepository) Create(post *models.Post) error {
	db, cancel := withTimeout(r.db)
	defer cancel()

	if err := db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by ID, returning ErrNotFound when absent.
func (r *GORMPostRepository) GetByID(id uint) (*models.Post, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var post models.Post
	if err := db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post by ID %d: %w", id, err)
	}
	return &post, nil
}

// GetAll retrieves one page of posts ordered by creation time, newest first.
func (r *GORMPostRepository) GetAll(page, limit int) ([]models.Post, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var posts []models.Post
	offset := (page - 1) * limit
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}
	return posts, nil
}

// Update overwrites only the fields present in req and returns the updated
// post. Returns ErrNotFound when the id does not exist.
func (r *GORMPostRepository) Update(id uint, req *schemas.UpdatePostRequest) (*models.Post, error) {
	post, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
	}
	if req.IsPublished != nil {
		updates["is_published"] = *req.IsPublished
	}
	if len(updates) == 0 {
		return post, nil
	}

	db, cancel := withTimeout(r.db)
	defer cancel()

	if err := db.Model(post).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}
	return post, nil
}

// Delete removes a post by ID. The boolean reports whether a row existed.
func (r *GORMPostRepository) Delete(id uint) (bool, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	res := db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete post %d: %w", id, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Count returns the total number of posts.
func (r *GORMPostRepository) Count() (int64, error) {
	db, cancel := withTimeout(r.db)
	defer cancel()

	var count int64
	if err := db.Model(&models.Post{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}
