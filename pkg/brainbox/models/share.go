package models

import "time"

// Share represents a user's public share link. One record per user: the
// link is minted on first enable and kept stable afterwards, disabling
// only flips IsActive.
type Share struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ShareLink string    `gorm:"uniqueIndex;not null" json:"share_link"`
	IsActive  bool      `gorm:"default:false" json:"is_active"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
