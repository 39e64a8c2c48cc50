package database

import (
	"gorm.io/gorm"
)

type Database struct {
	projectRepo        *ProjectRepo
	skillRepo          *SkillRepo
	blogPostRepo       *BlogPostRepo
	contactMessageRepo *ContactMessageRepo
	userRepo           *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:        NewProjectRepo(db),
		skillRepo:          NewSkillRepo(db),
		blogPostRepo:       NewBlogPostRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		userRepo:           NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}
