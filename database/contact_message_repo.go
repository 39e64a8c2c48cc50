package database

import (
	"github.com/google/uuid"
	"github.com/rohanj-gh/devfolio-backend/models"
	"gorm.io/gorm"
)

// ContactMessageRepo is insert-only; messages have no read surface.
type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// Add persists a visitor submission
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	return r.db.Create(message).Error
}
