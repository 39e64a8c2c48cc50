package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rohanj-gh/devfolio-backend/auth"
	"github.com/rohanj-gh/devfolio-backend/models"
)

// Call-counting stand-ins for the table store, so tests can assert that a
// rejected request never reached the backend.

type mockProjectStore struct {
	projects   []models.Project
	findAllErr error
	addErr     error
	updateErr  error
	deleteErr  error

	findAllCalls int
	addCalls     int
	updateCalls  int
	deleteCalls  int

	lastUpdateKey    string
	lastUpdateFields map[string]any
}

func (m *mockProjectStore) FindAll() ([]models.Project, error) {
	m.findAllCalls++
	if m.findAllErr != nil {
		return nil, m.findAllErr
	}
	return m.projects, nil
}

func (m *mockProjectStore) FindByID(id string) (*models.Project, error) {
	for i := range m.projects {
		if m.projects[i].ID == id {
			return &m.projects[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *mockProjectStore) Add(p *models.Project) error {
	m.addCalls++
	if m.addErr != nil {
		return m.addErr
	}
	if p.ID == "" {
		p.ID = "generated-project-id"
	}
	p.CreatedAt = time.Now()
	m.projects = append(m.projects, *p)
	return nil
}

func (m *mockProjectStore) UpdateFields(id string, fields map[string]any) error {
	m.updateCalls++
	m.lastUpdateKey = id
	m.lastUpdateFields = fields
	return m.updateErr
}

func (m *mockProjectStore) Delete(id string) error {
	m.deleteCalls++
	return m.deleteErr
}

type mockSkillStore struct {
	skills     []models.Skill
	findAllErr error
	addErr     error

	addCalls    int
	updateCalls int
	deleteCalls int

	lastUpdateKey    string
	lastUpdateFields map[string]any
}

func (m *mockSkillStore) FindAll() ([]models.Skill, error) {
	if m.findAllErr != nil {
		return nil, m.findAllErr
	}
	return m.skills, nil
}

func (m *mockSkillStore) FindByID(id string) (*models.Skill, error) {
	for i := range m.skills {
		if m.skills[i].ID == id {
			return &m.skills[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *mockSkillStore) Add(s *models.Skill) error {
	m.addCalls++
	if m.addErr != nil {
		return m.addErr
	}
	if s.ID == "" {
		s.ID = "generated-skill-id"
	}
	m.skills = append(m.skills, *s)
	return nil
}

func (m *mockSkillStore) UpdateFields(id string, fields map[string]any) error {
	m.updateCalls++
	m.lastUpdateKey = id
	m.lastUpdateFields = fields
	return nil
}

func (m *mockSkillStore) Delete(id string) error {
	m.deleteCalls++
	return nil
}

type mockBlogPostStore struct {
	posts      []models.BlogPost
	findAllErr error
	addErr     error

	addCalls    int
	updateCalls int
	deleteCalls int

	lastUpdateKey    string
	lastUpdateFields map[string]any
}

func (m *mockBlogPostStore) FindAll() ([]models.BlogPost, error) {
	if m.findAllErr != nil {
		return nil, m.findAllErr
	}
	return m.posts, nil
}

func (m *mockBlogPostStore) FindBySlug(slug string) (*models.BlogPost, error) {
	for i := range m.posts {
		if m.posts[i].Slug == slug {
			return &m.posts[i], nil
		}
	}
	return nil, errors.New("record not found")
}

func (m *mockBlogPostStore) Add(p *models.BlogPost) error {
	m.addCalls++
	if m.addErr != nil {
		return m.addErr
	}
	if p.ID == "" {
		p.ID = "generated-post-id"
	}
	p.CreatedAt = time.Now()
	m.posts = append(m.posts, *p)
	return nil
}

func (m *mockBlogPostStore) UpdateFields(slug string, fields map[string]any) error {
	m.updateCalls++
	m.lastUpdateKey = slug
	m.lastUpdateFields = fields
	return nil
}

func (m *mockBlogPostStore) Delete(slug string) error {
	m.deleteCalls++
	return nil
}

type mockContactStore struct {
	addErr   error
	addCalls int
	last     *models.ContactMessage
}

func (m *mockContactStore) Add(msg *models.ContactMessage) error {
	m.addCalls++
	if m.addErr != nil {
		return m.addErr
	}
	if msg.ID == "" {
		msg.ID = "generated-message-id"
	}
	m.last = msg
	return nil
}

type mockUserStore struct {
	addErr   error
	addCalls int
	users    map[string]models.User
}

func (m *mockUserStore) Add(u *models.User) error {
	m.addCalls++
	if m.addErr != nil {
		return m.addErr
	}
	if m.users == nil {
		m.users = map[string]models.User{}
	}
	m.users[u.ID] = *u
	return nil
}

// mockProvider mimics the external auth collaborator, tracking which
// identities exist so rollback can be observed.
type mockProvider struct {
	signUpErr  error
	signInErr  error
	identities map[string]auth.Identity

	deleteCalls   int
	lastDeletedID string
}

func (m *mockProvider) SignUp(ctx context.Context, name, email, password string) (*auth.Identity, error) {
	if m.signUpErr != nil {
		return nil, m.signUpErr
	}
	identity := auth.Identity{ID: "identity-1", Email: email, Name: name}
	if m.identities == nil {
		m.identities = map[string]auth.Identity{}
	}
	m.identities[identity.ID] = identity
	return &identity, nil
}

func (m *mockProvider) SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, error) {
	if m.signInErr != nil {
		return nil, m.signInErr
	}
	return &auth.Session{
		AccessToken: "test-access-token",
		TokenType:   "bearer",
		ExpiresIn:   3600,
		User:        auth.Identity{ID: "identity-1", Email: email},
	}, nil
}

func (m *mockProvider) DeleteUser(ctx context.Context, id string) error {
	m.deleteCalls++
	m.lastDeletedID = id
	delete(m.identities, id)
	return nil
}

type mockMailer struct {
	sendErr   error
	sendCalls int
	lastTo    []string
}

func (m *mockMailer) SendEmail(subject, body string, recipients []string) error {
	m.sendCalls++
	m.lastTo = recipients
	return m.sendErr
}

type mockUploader struct {
	uploadErr error
	lastKey   string
}

func (m *mockUploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	m.lastKey = key
	return "https://bucket.s3.us-east-1.amazonaws.com/" + key, nil
}

// Request helpers

func doJSON(t *testing.T, handler http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func dataField(t *testing.T, body map[string]any, key string) map[string]any {
	t.Helper()

	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "response has no data object")
	record, ok := data[key].(map[string]any)
	require.True(t, ok, "data has no %q object", key)
	return record
}
