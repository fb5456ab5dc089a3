// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a blog post. Comments is an owned collection, always
// serialized as an array (never null) and ordered by comment ID.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `json:"title"`
	Content   string         `gorm:"type:text" json:"content"`
	Comments  []Comment      `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// NormalizeComments replaces a nil comments slice with an empty one so the
// JSON body always carries "comments": [].
func (p *Post) NormalizeComments() {
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
}
