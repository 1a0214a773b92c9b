package models

import "time"

// Post represents a blog post owned by a single user.
// Deleting the owning user cascades to its posts.
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(200);not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	User        User      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	IsPublished bool      `json:"is_published" gorm:"not null;default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
