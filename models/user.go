package models

import "time"

// User is the application profile row for an auth identity. The id is the
// identity id assigned by the auth provider, not locally generated.
// Every registered user gets the admin role; there is no role hierarchy.
type User struct {
	ID        string    `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Role      string    `json:"role" db:"role" gorm:"type:text;not null;default:'admin'"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"type:timestamptz;not null;default:CURRENT_TIMESTAMP;<-:create"`
}
