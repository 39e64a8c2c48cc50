package database

import (
	"github.com/rohanj-gh/devfolio-backend/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// Add inserts the profile row for a freshly created auth identity. The id
// comes from the auth provider and is never generated locally.
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID returns a user profile by its identity id
func (r *UserRepo) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user profile by id
func (r *UserRepo) Delete(id string) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
