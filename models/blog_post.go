package models

import "time"

// BlogPost represents a blog entry. The slug is the external lookup key
// for single-post reads, updates and deletes; the id stays internal.
type BlogPost struct {
	ID              string    `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title           string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug            string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Content         string    `json:"content" db:"content" gorm:"type:text;not null"`
	MetaDescription string    `json:"meta_description,omitempty" db:"meta_description" gorm:"type:text"`
	Published       bool      `json:"published" db:"published" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP;<-:create"`
}
