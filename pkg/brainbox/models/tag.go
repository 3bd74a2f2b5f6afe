package models

import "time"

// Tag represents a tag that can be applied to content. Tags are created
// lazily the first time a name is referenced and shared across records.
type Tag struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`

	// Relationships
	Content []Content `gorm:"many2many:content_tags;" json:"content,omitempty"`
}
