package database

import (
	"github.com/google/uuid"
	"github.com/rohanj-gh/devfolio-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skills ranked by proficiency level, strongest first.
// Name breaks ties so the ordering is stable.
func (r *SkillRepo) FindAll() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.
		Order("CASE level WHEN 'Advanced' THEN 3 WHEN 'Intermediate' THEN 2 WHEN 'Beginner' THEN 1 ELSE 0 END DESC").
		Order("name ASC").
		Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID
func (r *SkillRepo) FindByID(id string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill, assigning the id when the caller left it empty
func (r *SkillRepo) Add(skill *models.Skill) error {
	if skill.ID == "" {
		skill.ID = uuid.NewString()
	}
	return r.db.Create(skill).Error
}

// UpdateFields applies a partial column update; fields absent from the map
// are left untouched.
func (r *SkillRepo) UpdateFields(id string, fields map[string]any) error {
	return r.db.Model(&models.Skill{}).Where("id = ?", id).Updates(fields).Error
}

// Delete removes a skill by id. Deleting an absent id is not an error.
func (r *SkillRepo) Delete(id string) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}
