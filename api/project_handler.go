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

// projectStore is the slice of the table store the project endpoints use.
type projectStore interface {
	FindAll() ([]models.Project, error)
	FindByID(id string) (*models.Project, error)
	Add(project *models.Project) error
	UpdateFields(id string, fields map[string]any) error
	Delete(id string) error
}

type projectHandler struct {
	responder      Responder
	logger         zerolog.Logger
	projects       projectStore
	sampleFallback bool
}

func newProjectHandler(projects projectStore, sampleFallback bool) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		projects:       projects,
		sampleFallback: sampleFallback,
	}
}

// updatable columns for a partial project update; id and created_at stay
// immutable.
var projectColumns = map[string]bool{
	"title":       true,
	"description": true,
	"tech_stack":  true,
	"github_link": true,
	"live_link":   true,
	"images":      true,
	"featured":    true,
}

// listProjects retrieves all projects, newest first. A failed or empty read
// serves the sample collection instead so the public site always renders;
// the fallback is never reported as an error.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projects.FindAll()
		if err != nil {
			if !h.sampleFallback {
				h.responder.WriteError(w, errs.NewBackendError("list", "projects", err))
				return
			}
			h.logger.Warn().Err(err).Msg("store unavailable, serving sample projects")
			projects = models.SampleProjects
		}
		if len(projects) == 0 && h.sampleFallback {
			projects = models.SampleProjects
		}

		h.responder.WriteJSON(w, listResponse("projects", len(projects), projects))
	}
}

// getProject retrieves one project by id. A miss or backend failure is a
// 404 carrying the store's error detail; no sample substitution here.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFound("project", err))
			return
		}

		h.responder.WriteJSON(w, dataResponse("project", project))
	}
}

// createProject validates the body against the project schema and inserts
// it. The caller was already resolved by the authorization gate.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input schemas.ProjectInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fieldErrs := schemas.ValidateProject(input); len(fieldErrs) > 0 {
			h.responder.WriteValidationErrors(w, fieldErrs)
			return
		}

		project := input.Model()
		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, errs.NewBackendError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, dataResponse("project", project))
	}
}

// updateProject merges the supplied fields onto the record; omitted fields
// stay untouched. The response echoes the submitted body, not a re-read
// record.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := filterColumns(body, projectColumns)
		for _, col := range []string{"tech_stack", "images"} {
			if v, ok := fields[col]; ok {
				fields[col] = toStringArray(v)
			}
		}

		if len(fields) > 0 {
			if err := h.projects.UpdateFields(projectID, fields); err != nil {
				h.responder.WriteError(w, errs.NewBackendError("update", "project", err))
				return
			}
		}

		h.responder.WriteJSON(w, dataResponse("project", body))
	}
}

// deleteProject removes the record unconditionally; deleting an absent id
// succeeds.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID := chi.URLParam(r, "projectID")

		if caller := callerFromCtx(r.Context()); caller != nil {
			h.logger.Info().Str("caller", caller.Email).Str("projectID", projectID).Msg("Deleting project")
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, errs.NewBackendError("delete", "project", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
