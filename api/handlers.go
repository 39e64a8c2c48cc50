package api

import (
	"github.com/rohanj-gh/devfolio-backend/config"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler  projectHandler
	skillHandler    skillHandler
	blogPostHandler blogPostHandler
	contactHandler  contactHandler
	authHandler     authHandler
	uploadHandler   uploadHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(deps Deps, cfg map[string]string) *routeHandlers {
	// Serving hardcoded sample data on a failed or empty list read is a
	// product decision: the public site must render content even against an
	// unconfigured backend. SAMPLE_FALLBACK=false turns it off.
	sampleFallback := config.GetBool(cfg, "SAMPLE_FALLBACK", true)
	notifyEmail := config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", "")

	return &routeHandlers{
		projectHandler:  newProjectHandler(deps.DB.ProjectRepo(), sampleFallback),
		skillHandler:    newSkillHandler(deps.DB.SkillRepo(), sampleFallback),
		blogPostHandler: newBlogPostHandler(deps.DB.BlogPostRepo(), sampleFallback),
		contactHandler:  newContactHandler(deps.DB.ContactMessageRepo(), deps.Mailer, notifyEmail),
		authHandler:     newAuthHandler(deps.Auth, deps.DB.UserRepo()),
		uploadHandler:   newUploadHandler(deps.Uploader),
	}
}
