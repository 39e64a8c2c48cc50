package api

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rohanj-gh/devfolio-backend/errs"
	"github.com/rohanj-gh/devfolio-backend/models"
	"github.com/rohanj-gh/devfolio-backend/schemas"
)

type skillStore interface {
	FindAll() ([]models.Skill, error)
	FindByID(id string) (*models.Skill, error)
	Add(skill *models.Skill) error
	UpdateFields(id string, fields map[string]any) error
	Delete(id string) error
}

type skillHandler struct {
	responder      Responder
	logger         zerolog.Logger
	skills         skillStore
	sampleFallback bool
}

func newSkillHandler(skills skillStore, sampleFallback bool) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		skills:         skills,
		sampleFallback: sampleFallback,
	}
}

var skillColumns = map[string]bool{
	"name":     true,
	"category": true,
	"level":    true,
	"icon":     true,
	"visible":  true,
}

// listSkills retrieves all skills ranked by proficiency, strongest first,
// with the same sample fallback as the other list endpoints.
func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skills.FindAll()
		if err != nil {
			if !h.sampleFallback {
				h.responder.WriteError(w, errs.NewBackendError("list", "skills", err))
				return
			}
			h.logger.Warn().Err(err).Msg("store unavailable, serving sample skills")
			skills = rankedSamples()
		}
		if len(skills) == 0 && h.sampleFallback {
			skills = rankedSamples()
		}

		h.responder.WriteJSON(w, listResponse("skills", len(skills), skills))
	}
}

// rankedSamples orders the sample skills the same way the store query
// orders live rows.
func rankedSamples() []models.Skill {
	skills := make([]models.Skill, len(models.SampleSkills))
	copy(skills, models.SampleSkills)
	sort.SliceStable(skills, func(i, j int) bool {
		if models.LevelRank(skills[i].Level) != models.LevelRank(skills[j].Level) {
			return models.LevelRank(skills[i].Level) > models.LevelRank(skills[j].Level)
		}
		return skills[i].Name < skills[j].Name
	})
	return skills
}

func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID := chi.URLParam(r, "skillID")

		skill, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, errs.NewNotFound("skill", err))
			return
		}

		h.responder.WriteJSON(w, dataResponse("skill", skill))
	}
}

// createSkill validates the body against the skill schema and inserts it.
// Visibility defaults to true when the form omits it.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input schemas.SkillInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if fieldErrs := schemas.ValidateSkill(input); len(fieldErrs) > 0 {
			h.responder.WriteValidationErrors(w, fieldErrs)
			return
		}

		skill := input.Model()
		if err := h.skills.Add(&skill); err != nil {
			h.responder.WriteError(w, errs.NewBackendError("create", "skill", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, dataResponse("skill", skill))
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID := chi.URLParam(r, "skillID")

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode skill request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		fields := filterColumns(body, skillColumns)
		if len(fields) > 0 {
			if err := h.skills.UpdateFields(skillID, fields); err != nil {
				h.responder.WriteError(w, errs.NewBackendError("update", "skill", err))
				return
			}
		}

		h.responder.WriteJSON(w, dataResponse("skill", body))
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID := chi.URLParam(r, "skillID")

		if err := h.skills.Delete(skillID); err != nil {
			h.responder.WriteError(w, errs.NewBackendError("delete", "skill", err))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
