// Package schemas defines the recognized fields and constraints for each
// entity accepted from the admin forms. Validation is pure: it inspects the
// input and reports which constraints failed, field by field, before any
// store call is made.
package schemas

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/rohanj-gh/devfolio-backend/models"
)

// FieldError names the field that violated a constraint and why.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors is the full set of violations for one submission.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// ProjectInput is the create payload for a project. TechStack arrives
// already split when the client did the work, or as a raw comma-separated
// string in TechStackRaw when it did not.
type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	TechStack    []string `json:"tech_stack"`
	TechStackRaw string   `json:"tech_stack_raw,omitempty"`
	GithubLink   string   `json:"github_link"`
	LiveLink     string   `json:"live_link"`
	Images       []string `json:"images,omitempty"`
	Featured     *bool    `json:"featured,omitempty"`
}

type SkillInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    string `json:"level"`
	Icon     string `json:"icon,omitempty"`
	Visible  *bool  `json:"visible,omitempty"`
}

type BlogPostInput struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Content         string `json:"content"`
	MetaDescription string `json:"meta_description,omitempty"`
	Published       *bool  `json:"published,omitempty"`
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// ValidateProject checks the project form constraints. The tech stack must
// be non-trivial whichever form it arrived in; links may be empty or must
// parse as URLs.
func ValidateProject(in ProjectInput) FieldErrors {
	var errs FieldErrors
	if utf8.RuneCountInString(in.Title) < 2 {
		errs = append(errs, FieldError{"title", "Title must be at least 2 characters."})
	}
	if utf8.RuneCountInString(in.Description) < 10 {
		errs = append(errs, FieldError{"description", "Description must be at least 10 characters."})
	}
	if len(in.TechStack) == 0 && utf8.RuneCountInString(in.TechStackRaw) < 2 {
		errs = append(errs, FieldError{"tech_stack", "Please enter at least one technology."})
	}
	if !validOptionalURL(in.GithubLink) {
		errs = append(errs, FieldError{"github_link", "Invalid URL"})
	}
	if !validOptionalURL(in.LiveLink) {
		errs = append(errs, FieldError{"live_link", "Invalid URL"})
	}
	return errs
}

func ValidateSkill(in SkillInput) FieldErrors {
	var errs FieldErrors
	if utf8.RuneCountInString(in.Name) < 2 {
		errs = append(errs, FieldError{"name", "Name must be at least 2 characters."})
	}
	if utf8.RuneCountInString(in.Category) < 2 {
		errs = append(errs, FieldError{"category", "Category must be at least 2 characters."})
	}
	switch in.Level {
	case models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced:
	default:
		errs = append(errs, FieldError{"level", "Level must be one of Beginner, Intermediate or Advanced."})
	}
	return errs
}

func ValidateBlogPost(in BlogPostInput) FieldErrors {
	var errs FieldErrors
	if utf8.RuneCountInString(in.Title) < 2 {
		errs = append(errs, FieldError{"title", "Title must be at least 2 characters."})
	}
	if utf8.RuneCountInString(in.Slug) < 2 {
		errs = append(errs, FieldError{"slug", "Slug must be at least 2 characters."})
	}
	if utf8.RuneCountInString(in.Content) < 10 {
		errs = append(errs, FieldError{"content", "Content must be at least 10 characters."})
	}
	return errs
}

// ValidateContact requires name, email and message; subject stays optional.
func ValidateContact(in ContactInput) FieldErrors {
	var errs FieldErrors
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, FieldError{"name", "Please provide your name."})
	}
	if strings.TrimSpace(in.Email) == "" {
		errs = append(errs, FieldError{"email", "Please provide your email."})
	}
	if strings.TrimSpace(in.Message) == "" {
		errs = append(errs, FieldError{"message", "Please provide a message."})
	}
	return errs
}

// SplitTechStack derives the stored sequence from the form's
// comma-separated string, trimming whitespace and dropping empty tokens.
func SplitTechStack(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Model builds the stored project from validated input, applying defaults.
func (in ProjectInput) Model() models.Project {
	tech := in.TechStack
	if len(tech) == 0 && in.TechStackRaw != "" {
		tech = SplitTechStack(in.TechStackRaw)
	}
	p := models.Project{
		Title:       in.Title,
		Description: in.Description,
		TechStack:   tech,
		GithubLink:  in.GithubLink,
		LiveLink:    in.LiveLink,
		Images:      in.Images,
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	return p
}

// Model builds the stored skill, defaulting visibility to true when the
// form omitted it.
func (in SkillInput) Model() models.Skill {
	s := models.Skill{
		Name:     in.Name,
		Category: in.Category,
		Level:    in.Level,
		Icon:     in.Icon,
		Visible:  true,
	}
	if in.Visible != nil {
		s.Visible = *in.Visible
	}
	return s
}

// Model builds the stored post, defaulting published to false.
func (in BlogPostInput) Model() models.BlogPost {
	p := models.BlogPost{
		Title:           in.Title,
		Slug:            in.Slug,
		Content:         in.Content,
		MetaDescription: in.MetaDescription,
	}
	if in.Published != nil {
		p.Published = *in.Published
	}
	return p
}

func validOptionalURL(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
