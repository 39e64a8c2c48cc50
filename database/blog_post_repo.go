package database

import (
	"github.com/google/uuid"
	"github.com/rohanj-gh/devfolio-backend/models"
	"gorm.io/gorm"
)

// BlogPostRepo addresses posts by slug: the slug is the external key for
// single-post reads, updates and deletes.
type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindAll returns all blog posts, newest first
func (r *BlogPostRepo) FindAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindBySlug returns a blog post by its slug
func (r *BlogPostRepo) FindBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post, assigning the id when the caller left it
// empty. A duplicate slug surfaces as the store's unique-constraint error.
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	return r.db.Create(post).Error
}

// UpdateFields applies a partial column update addressed by slug; fields
// absent from the map are left untouched.
func (r *BlogPostRepo) UpdateFields(slug string, fields map[string]any) error {
	return r.db.Model(&models.BlogPost{}).Where("slug = ?", slug).Updates(fields).Error
}

// Delete removes a blog post by slug. Deleting an absent slug is not an error.
func (r *BlogPostRepo) Delete(slug string) error {
	return r.db.Delete(&models.BlogPost{}, "slug = ?", slug).Error
}
