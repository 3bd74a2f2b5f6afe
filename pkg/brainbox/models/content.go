package models

import "time"

// ContentType classifies a content record
type ContentType string

const (
	ContentTypeDocument ContentType = "document"
	ContentTypeTweet    ContentType = "tweet"
	ContentTypeYoutube  ContentType = "youtube"
	ContentTypeLink     ContentType = "link"
)

// IsValid reports whether t is one of the known content types
func (t ContentType) IsValid() bool {
	switch t {
	case ContentTypeDocument, ContentTypeTweet, ContentTypeYoutube, ContentTypeLink:
		return true
	}
	return false
}

// Content represents a user-owned bookmark record. Content is created and
// deleted, never updated in place.
type Content struct {
	ID        uint        `gorm:"primarykey" json:"id"`
	CreatedAt time.Time   `json:"created_at"`
	Title     string      `gorm:"not null" json:"title"`
	Link      string      `gorm:"not null" json:"link"`
	Type      ContentType `gorm:"type:varchar(20);not null" json:"type"`
	UserID    uint        `gorm:"not null;index" json:"user_id"`

	// Relationships
	User User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Tags []Tag `gorm:"many2many:content_tags;" json:"tags,omitempty"`
}
