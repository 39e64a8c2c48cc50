package database

import (
	"github.com/google/uuid"
	"github.com/rohanj-gh/devfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects, newest first
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project, assigning the id when the caller left it empty
func (r *ProjectRepo) Add(project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	return r.db.Create(project).Error
}

// UpdateFields applies a partial column update; fields absent from the map
// are left untouched. Callers strip immutable columns before calling.
func (r *ProjectRepo) UpdateFields(id string, fields map[string]any) error {
	return r.db.Model(&models.Project{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a project by id. Deleting an absent id is not an error.
func (r *ProjectRepo) Delete(id string) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
