package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public read surface and the authenticated admin
// surface. Reads and visitor endpoints need no caller; every mutation of
// projects, skills and blog posts sits behind the authorization gate.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Group(func(r chi.Router) {
			r.Use(ColoredHTTPLoggingMiddleware)

			r.Get("/projects", handlers.projectHandler.listProjects())
			r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

			r.Get("/skills", handlers.skillHandler.listSkills())
			r.Get("/skills/{skillID}", handlers.skillHandler.getSkill())

			r.Get("/blog", handlers.blogPostHandler.listBlogPosts())
			r.Get("/blog/{slug}", handlers.blogPostHandler.getBlogPost())

			r.Post("/contact", handlers.contactHandler.submitMessage())

			r.Post("/auth/login", handlers.authHandler.login())
			r.Post("/auth/register", handlers.authHandler.register())
		})

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(ColoredHTTPLoggingMiddleware)
			r.Use(authMiddleware.authenticate)

			r.Post("/projects", handlers.projectHandler.createProject())
			r.Patch("/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Post("/skills", handlers.skillHandler.createSkill())
			r.Patch("/skills/{skillID}", handlers.skillHandler.updateSkill())
			r.Delete("/skills/{skillID}", handlers.skillHandler.deleteSkill())

			r.Post("/blog", handlers.blogPostHandler.createBlogPost())
			r.Patch("/blog/{slug}", handlers.blogPostHandler.updateBlogPost())
			r.Delete("/blog/{slug}", handlers.blogPostHandler.deleteBlogPost())

			r.Post("/uploads", handlers.uploadHandler.uploadImage())
		})
	})
}
