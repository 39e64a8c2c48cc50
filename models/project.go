package models

import (
	"time"

	"github.com/lib/pq"
)

// Project represents a portfolio project entry
type Project struct {
	ID          string         `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string         `json:"title" db:"title" gorm:"type:text;not null"`
	Description string         `json:"description" db:"description" gorm:"type:text;not null"`
	TechStack   pq.StringArray `json:"tech_stack" db:"tech_stack" gorm:"type:text[]"`
	GithubLink  string         `json:"github_link" db:"github_link" gorm:"type:text"`
	LiveLink    string         `json:"live_link" db:"live_link" gorm:"type:text"`
	Images      pq.StringArray `json:"images,omitempty" db:"images" gorm:"type:text[]"`
	Featured    bool           `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP;<-:create"`
}
