package models

import "time"

// User represents an account. Users are created at signup and never
// updated or deleted afterwards.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`

	// Relationships
	Content []Content `gorm:"foreignKey:UserID" json:"content,omitempty"`
}
