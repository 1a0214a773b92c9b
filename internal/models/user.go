package models

import "time"

// User represents a registered user account.
// The password is stored only as a bcrypt digest and is never serialized.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Username     string    `json:"username" gorm:"type:varchar(50);not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	FullName     *string   `json:"full_name" gorm:"type:varchar(100)"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
