package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohanj-gh/devfolio-backend/auth"
	"github.com/rohanj-gh/devfolio-backend/models"
)

const testJWTSecret = "super-secret-jwt-signing-key"

func signTestToken(t *testing.T, subject string, expiresIn time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   subject,
		"email": "[email protected]",
		"exp":   time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

// newGatedProjectRouter mounts the project routes the way setupRoutes does:
// reads public, mutations behind the authorization gate.
func newGatedProjectRouter(store *mockProjectStore) http.Handler {
	h := newProjectHandler(store, true)
	mw := newAuthMiddleware(auth.NewTokenVerifier(testJWTSecret))

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Get("/api/projects", h.listProjects())
		r.Get("/api/projects/{projectID}", h.getProject())
	})
	r.Group(func(r chi.Router) {
		r.Use(mw.authenticate)
		r.Post("/api/projects", h.createProject())
		r.Patch("/api/projects/{projectID}", h.updateProject())
		r.Delete("/api/projects/{projectID}", h.deleteProject())
	})
	return r
}

func TestMutationsRequireResolvedCaller(t *testing.T) {
	store := &mockProjectStore{projects: []models.Project{
		{ID: "123", Title: "Existing", Description: "long enough text", Featured: false},
	}}
	router := newGatedProjectRouter(store)

	rec := doJSON(t, router, http.MethodPatch, "/api/projects/123", map[string]any{"featured": true})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// No write side effect occurred.
	assert.Equal(t, 0, store.updateCalls)

	// A subsequent read still shows featured unchanged.
	rec = doJSON(t, router, http.MethodGet, "/api/projects/123", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	project := dataField(t, decodeBody(t, rec), "project")
	assert.Equal(t, false, project["featured"])
}

func TestCreateWithoutCallerNeverHitsStore(t *testing.T) {
	store := &mockProjectStore{}
	rec := doJSON(t, newGatedProjectRouter(store), http.MethodPost, "/api/projects", map[string]any{
		"title":       "New Project",
		"description": "a sufficiently long description",
		"tech_stack":  []string{"Go"},
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, store.addCalls)
}

func TestReadsNeedNoCaller(t *testing.T) {
	store := &mockProjectStore{}
	rec := doJSON(t, newGatedProjectRouter(store), http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateAcceptsBearerToken(t *testing.T) {
	store := &mockProjectStore{}
	token := signTestToken(t, "user-1", time.Hour)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/123", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	newGatedProjectRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, store.deleteCalls)
}

func TestAuthenticateAcceptsSessionCookie(t *testing.T) {
	store := &mockProjectStore{}
	token := signTestToken(t, "user-1", time.Hour)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/123", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	newGatedProjectRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	store := &mockProjectStore{}
	token := signTestToken(t, "user-1", -time.Hour)

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/123", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	newGatedProjectRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, store.deleteCalls)
}

func TestAuthenticateRejectsTamperedToken(t *testing.T) {
	store := &mockProjectStore{}
	token := signTestToken(t, "user-1", time.Hour)
	tampered := token[:strings.LastIndex(token, ".")] + ".forgedsignature"

	req := httptest.NewRequest(http.MethodDelete, "/api/projects/123", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	rec := httptest.NewRecorder()
	newGatedProjectRouter(store).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCallerContextRoundTrip(t *testing.T) {
	caller := &auth.Identity{ID: "user-1", Email: "[email protected]"}
	ctx := ctxWithCaller(context.Background(), caller)

	assert.Equal(t, caller, callerFromCtx(ctx))
	assert.Nil(t, callerFromCtx(context.Background()))
}
