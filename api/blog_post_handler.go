package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rohanj-gh/devfolio-backend/errs"
	"github.com/rohanj-gh/devfolio-backend/models"
	"github.com/rohanj-gh/devfolio-backend/schemas"
)

// blogPostStore addresses single posts by slug, the external key for blog
// content.
type blogPostStore interface {
	FindAll() ([]models.BlogPost, error)
	FindBySlug(slug string) (*models.BlogPost, error)
	Add(post *models.BlogPost) error
	UpdateFields(slug string, fields map[string]any) error
	Delete(slug string) error
}

type blogPostHandler struct {
	responder      Responder
	logger         zerolog.Logger
	posts          blogPostStore
	sampleFallback bool
}

func newBlogPostHandler(posts blogPostStore, sampleFallback bool) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		posts:          posts,
		sampleFallback: sampleFallback,
	}
}

// slug is updatable (it is the key, not creation metadata); id and
// created_at are not.
var blogPostColumns = map[string]bool{
	"title":            true,
	"slug":             true,
	"content":          true,
	"meta_description": true,
	"published":        true,
}

func (h blogPostHandler) listBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.posts.FindAll()
		if err != nil {
			if !h.sampleFallback {
				h.responder.WriteError(w, errs.NewBackendError("list", "blog posts", err))
				return
			}
			h.logger.Warn().Err(err).Msg("store unavailable, serving sample blog posts")
			posts = models.SampleBlogPosts
		}
		if len(posts) == 0 && h.sampleFallback {
			posts = models.SampleBlogPosts
		}

		h.responder.WriteJSON(w, listResponse("blogPosts", len(posts), posts))
	}
}

func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		post, err := h.posts.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFound("blog post", err))
			return
		}

		h.responder.WriteJSON(w, dataResponse("blogPost", post))
	}
}

// createBlogPost validates the body against the blog post schema and
// inserts it. A duplicate slug surfaces as the store's unique-constraint
// violation, never a silent overwrite.
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input schemas.BlogPostInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fieldErrs := schemas.ValidateBlogPost(input); len(fieldErrs) > 0 {
			h.responder.WriteValidationErrors(w, fieldErrs)
			return
		}

		post := input.Model()
		if err := h.posts.Add(&post); err != nil {
			h.responder.WriteError(w, errs.NewBackendError("create", "blog post", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, dataResponse("blogPost", post))
	}
}

func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := filterColumns(body, blogPostColumns)
		if len(fields) > 0 {
			if err := h.posts.UpdateFields(slug, fields); err != nil {
				h.responder.WriteError(w, errs.NewBackendError("update", "blog post", err))
				return
			}
		}

		h.responder.WriteJSON(w, dataResponse("blogPost", body))
	}
}

func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		if err := h.posts.Delete(slug); err != nil {
			h.responder.WriteError(w, errs.NewBackendError("delete", "blog post", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
