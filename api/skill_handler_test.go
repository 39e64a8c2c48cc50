package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohanj-gh/devfolio-backend/models"
)

func newSkillRouter(store *mockSkillStore, sampleFallback bool) http.Handler {
	h := newSkillHandler(store, sampleFallback)
	r := chi.NewRouter()
	r.Get("/api/skills", h.listSkills())
	r.Get("/api/skills/{skillID}", h.getSkill())
	r.Post("/api/skills", h.createSkill())
	r.Patch("/api/skills/{skillID}", h.updateSkill())
	r.Delete("/api/skills/{skillID}", h.deleteSkill())
	return r
}

func TestListSkillsFallsBackOnStoreError(t *testing.T) {
	store := &mockSkillStore{findAllErr: errors.New("relation \"skills\" does not exist")}
	rec := doJSON(t, newSkillRouter(store, true), http.MethodGet, "/api/skills", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(len(models.SampleSkills)), body["results"])

	// Samples come back ranked the way the store query ranks live rows:
	// strongest level first, name breaking ties.
	skills := body["data"].(map[string]any)["skills"].([]any)
	first := skills[0].(map[string]any)
	assert.Equal(t, "Git", first["name"])
	assert.Equal(t, models.LevelAdvanced, first["level"])
}

func TestCreateSkillAppliesVisibleDefault(t *testing.T) {
	store := &mockSkillStore{}
	rec := doJSON(t, newSkillRouter(store, true), http.MethodPost, "/api/skills", map[string]any{
		"name":     "Go",
		"category": "Backend",
		"level":    "Advanced",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	skill := dataField(t, decodeBody(t, rec), "skill")
	assert.NotEmpty(t, skill["id"])
	assert.Equal(t, true, skill["visible"])
	assert.Equal(t, "Advanced", skill["level"])
}

func TestCreateSkillHonorsExplicitVisibility(t *testing.T) {
	store := &mockSkillStore{}
	rec := doJSON(t, newSkillRouter(store, true), http.MethodPost, "/api/skills", map[string]any{
		"name":     "COBOL",
		"category": "Legacy",
		"level":    "Beginner",
		"visible":  false,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	skill := dataField(t, decodeBody(t, rec), "skill")
	assert.Equal(t, false, skill["visible"])
}

func TestCreateSkillRejectsUnknownLevel(t *testing.T) {
	store := &mockSkillStore{}
	rec := doJSON(t, newSkillRouter(store, true), http.MethodPost, "/api/skills", map[string]any{
		"name":     "Go",
		"category": "Backend",
		"level":    "Wizard",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, store.addCalls)
}

func TestUpdateSkillEchoesSubmittedBody(t *testing.T) {
	store := &mockSkillStore{}
	submitted := map[string]any{"level": "Intermediate"}
	rec := doJSON(t, newSkillRouter(store, true), http.MethodPatch, "/api/skills/s1", submitted)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "s1", store.lastUpdateKey)
	assert.Equal(t, map[string]any{"level": "Intermediate"}, store.lastUpdateFields)

	skill := dataField(t, decodeBody(t, rec), "skill")
	assert.Equal(t, submitted, skill)
}

func TestDeleteSkill(t *testing.T) {
	store := &mockSkillStore{}
	rec := doJSON(t, newSkillRouter(store, true), http.MethodDelete, "/api/skills/s1", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, store.deleteCalls)
}
